package spacesim

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// AssetDB is the sqlite-backed catalog of graphics assets found by
// Scan, keyed on content checksum so renamed copies are recognized.
type AssetDB struct {
	db *sql.DB
}

func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, path TEXT NOT NULL, kind TEXT NOT NULL, bytes INTEGER NOT NULL, colors INTEGER)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Asset is one catalogued file.
type Asset struct {
	CRC    string
	Path   string
	Kind   string
	Bytes  int64
	Colors sql.NullInt64
}

// AddAsset records a in the catalog. Recording content that has
// already been seen returns the existing row id.
func (db *AssetDB) AddAsset(a Asset) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM asset WHERE crc = ?", a.CRC).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO asset (crc, path, kind, bytes, colors) VALUES (?, ?, ?, ?, ?)", a.CRC, a.Path, a.Kind, a.Bytes, a.Colors)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// FindAssetByCRC returns the catalogued asset with the given checksum,
// or nil if the content has not been seen.
func (db *AssetDB) FindAssetByCRC(crc string) (*Asset, error) {
	a := Asset{CRC: crc}
	switch err := db.db.QueryRow("SELECT path, kind, bytes, colors FROM asset WHERE crc = ?", crc).Scan(&a.Path, &a.Kind, &a.Bytes, &a.Colors); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &a, nil
	default:
		return nil, err
	}
}
