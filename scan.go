package spacesim

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mtauraso/spacesim-tools/palette"
	"github.com/mtauraso/spacesim-tools/r8"
)

const scanWorkers = 10

// assetKind classifies a candidate file by extension and size. An .R8
// must be exactly the fixed raster length; a .PLT must hold at least
// one triple. Returns "" for files the catalog does not track.
func assetKind(file string, size int64) string {
	switch strings.ToUpper(filepath.Ext(file)) {
	case ".R8":
		if size == r8.ImageBytes {
			return "image"
		}
	case ".PLT":
		if size >= 3 {
			return "palette"
		}
	}
	return ""
}

func (s *SpaceSim) findAssets(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if assetKind(file, info.Size()) == "" {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (s *SpaceSim) assetWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			info, err := os.Stat(file)
			if err != nil {
				errc <- err
				return
			}

			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			existing, err := s.db.FindAssetByCRC(crc)
			if err != nil {
				errc <- err
				return
			}
			if existing != nil {
				s.logger.Printf("Already catalogued \"%s\" as \"%s\"\n", file, existing.Path)
				continue
			}

			a := Asset{
				CRC:   crc,
				Path:  file,
				Kind:  assetKind(file, info.Size()),
				Bytes: info.Size(),
			}
			if a.Kind == "palette" {
				a.Colors = sql.NullInt64{Int64: info.Size() / 3, Valid: true}
			}
			if a.Kind == "image" {
				a.Colors = sql.NullInt64{Int64: palette.Size, Valid: true}
			}

			if _, err := s.db.AddAsset(a); err != nil {
				errc <- err
				return
			}
			s.logger.Printf("Catalogued %s \"%s\", CRC \"%s\"\n", a.Kind, file, crc)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the tree under path and records every .R8 raster and .PLT
// palette it finds in the asset catalog.
func (s *SpaceSim) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := s.findAssets(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := s.assetWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
