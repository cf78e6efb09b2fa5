package migration

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/lucabarbosa/chocoflix/internal/db"
	"github.com/lucabarbosa/chocoflix/internal/model"
)

// Migrator brings the database schema up to the version this binary
// expects and stamps the stored meta information.
type Migrator struct {
	CurrentVersion string
	Database       *db.Database

	mi *model.MetaInfo
}

func (m *Migrator) Run(ctx context.Context) error {
	var err error

	m.mi, err = m.Database.GetMetaInfo(ctx)
	if err != nil {
		return fmt.Errorf("get metainformation failed: %w", err)
	}

	if db.Version != m.mi.DatabaseVersion {
		log.Warn("Database schema version changed, migrate")
		if m.mi.DatabaseVersion > db.Version {
			return fmt.Errorf("cannot migrate database from future version: %d", m.mi.DatabaseVersion)
		}

		if err = m.migrateDatabase(ctx); err != nil {
			return fmt.Errorf("migrate database failed: %w", err)
		}
	}

	if m.CurrentVersion != m.mi.Version {
		m.mi.Version = m.CurrentVersion
		if err = m.Database.SetMetaInfo(ctx, *m.mi); err != nil {
			return fmt.Errorf("update meta information failed: %w", err)
		}
	}

	return nil
}

func (m *Migrator) migrateDatabase(ctx context.Context) error {
	migrations := map[uint]func(ctx context.Context) error{
		0: m.migrateV0ToV1,
	}

	for cur := m.mi.DatabaseVersion; cur < db.Version; cur++ {
		fn, ok := migrations[cur]
		if !ok {
			return fmt.Errorf("no migration path from version %d", cur)
		}
		if err := fn(ctx); err != nil {
			return fmt.Errorf("migrate from version %d failed: %w", cur, err)
		}

		m.mi.DatabaseVersion = cur + 1
		if err := m.Database.SetMetaInfo(ctx, *m.mi); err != nil {
			return err
		}
		log.Infof("Database migrated to version %d", m.mi.DatabaseVersion)
	}

	return nil
}

func (m *Migrator) migrateV0ToV1(ctx context.Context) error {
	return m.Database.EnsureIndexes(ctx)
}
