package db

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/techagentng/socialgraph/config"
	"github.com/techagentng/socialgraph/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

// GetDB connects to postgres and brings the schema up to date.
func GetDB(c *config.Config, log *zap.SugaredLogger) (*GormDB, error) {
	log.Infow("connecting to postgres",
		"host", c.PostgresHost,
		"port", c.PostgresPort,
		"db", c.PostgresDB,
	)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.TimeZone)

	gormDB, err := New(postgres.New(postgres.Config{DSN: postgresDSN}), c)
	if err != nil {
		return nil, err
	}
	if err := gormDB.Init(); err != nil {
		return nil, err
	}
	log.Infow("schema ready", "tables", len(Models()))
	return gormDB, nil
}

// New opens a gorm handle on the given dialector without touching the schema.
func New(dialector gorm.Dialector, c *config.Config) (*GormDB, error) {
	gormConfig := &gorm.Config{}
	if c.Debug && !c.IsProd() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	return &GormDB{DB: gormDB}, nil
}

// Init runs migrations and seeds lookup tables.
func (g *GormDB) Init() error {
	if err := Migrate(g.DB); err != nil {
		return err
	}
	if err := SeedMediaTypes(g.DB); err != nil {
		return errors.Wrap(err, "seeding media types error")
	}
	return nil
}

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Follower{},
		&models.MediaType{},
		&models.Media{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "migrations error")
	}
	return nil
}

func SeedMediaTypes(db *gorm.DB) error {
	names := []string{models.MediaTypeImage, models.MediaTypeVideo, models.MediaTypeAudio}

	for _, name := range names {
		mediaType := models.MediaType{Name: name}
		if err := db.FirstOrCreate(&mediaType, models.MediaType{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
