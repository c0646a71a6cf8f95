package migration_0

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ModelRecord struct {
	Name    string `gorm:"primaryKey"`
	Path    string
	Device  string
	Version string
	Status  string `gorm:"size:20;not null"`

	Inputs  datatypes.JSON
	Outputs datatypes.JSON

	LoadedAt   sql.NullTime
	UnloadedAt sql.NullTime
}

type Prediction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModelName string    `gorm:"index;not null"`
	Status    string    `gorm:"size:20;not null"`

	SourceBucket string
	SourceKey    string
	AnnotatedKey sql.NullString

	Error        sql.NullString
	CreationTime time.Time
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&ModelRecord{}, &Prediction{}); err != nil {
		return fmt.Errorf("error creating initial tables: %w", err)
	}
	return nil
}
