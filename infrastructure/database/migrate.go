package database

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationDB devolve o banco usado pelas migrações. No postgres o driver do migrate
// segura uma conexão dedicada até o Close, então ele ganha um pool próprio e descartável.
// No sqlite o pool da aplicação é reaproveitado (em memória outro pool seria outro banco).
func migrationDB(conn *Connection) (db *sql.DB, owned bool, err error) {
	switch conn.Driver() {
	case DriverPostgres:
		db, err = sql.Open(DriverPostgres, conn.dsn)
		if err != nil {
			return nil, false, errors.Wrap(err, "erro ao abrir conexão de migração")
		}
		db.SetMaxOpenConns(1)
		return db, true, nil
	case DriverSQLite:
		return conn.DB, false, nil
	default:
		return nil, false, errors.Wrapf(ErrUnsupportedScheme, "driver %q", conn.Driver())
	}
}

// Migrate aplica as migrações pendentes do driver da conexão
func Migrate(conn *Connection) error {
	db, owned, err := migrationDB(conn)
	if err != nil {
		return err
	}
	if owned {
		defer db.Close()
	}

	var (
		driver migratedb.Driver
		dir    string
	)

	if conn.Driver() == DriverPostgres {
		dir = "migrations/postgres"
		driver, err = migratepg.WithInstance(db, &migratepg.Config{})
	} else {
		dir = "migrations/sqlite"
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		return errors.Wrap(err, "erro ao preparar driver de migração")
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return errors.Wrap(err, "erro ao ler migrações embutidas")
	}

	m, err := migrate.NewWithInstance("iofs", source, conn.Driver(), driver)
	if err != nil {
		return errors.Wrap(err, "erro ao criar instância de migração")
	}
	// fechar o migrate fecha o banco por baixo; só vale para o pool próprio
	if owned {
		defer m.Close()
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	version, dirty, _ := m.Version()
	logrus.WithFields(logrus.Fields{
		"driver":  conn.Driver(),
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações do banco aplicadas")

	return nil
}
