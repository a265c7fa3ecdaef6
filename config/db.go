package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-admin/models"
)

const defaultSQLiteDSN = "file:hotel.db"

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveDSN falls back to the DB_* variables when DB_HOST is set, and to a
// local SQLite file otherwise.
func resolveDSN(raw string) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return raw
	}
	if os.Getenv("DB_HOST") == "" {
		return defaultSQLiteDSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		envOrDefault("DB_USER", "root"),
		envOrDefault("DB_PASS", ""),
		envOrDefault("DB_HOST", "127.0.0.1"),
		envOrDefault("DB_PORT", "3306"),
		envOrDefault("DB_NAME", "hotel_db"),
	)
}

// Dialector picks the gorm driver from the shape of the DSN.
func Dialector(raw string) (gorm.Dialector, error) {
	dsn := resolveDSN(raw)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "mysql://"):
		converted, err := mysqlDSNFromURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse mysql url: %w", err)
		}
		return mysql.Open(converted), nil
	case strings.Contains(dsn, "@tcp("), strings.Contains(dsn, "@unix("):
		return mysql.Open(dsn), nil
	default:
		return sqlite.Open(sqliteDSN(dsn)), nil
	}
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func logLevel(name string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// OpenDatabase opens the store without migrating it.
func OpenDatabase(dsn, level string) (*gorm.DB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	return gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
}

// ConnectDatabase opens, migrates and seeds the store.
func ConnectDatabase(cfg App) (*gorm.DB, error) {
	db, err := OpenDatabase(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

type businessKey struct {
	model  any
	table  string
	column string
	text   bool
}

var businessKeys = []businessKey{
	{&models.Addon{}, "addons", "addon_name", true},
	{&models.BedType{}, "bed_types", "bed_type_name", true},
	{&models.Feature{}, "features", "feature_name", true},
	{&models.Floor{}, "floors", "floor_number", false},
	{&models.Guest{}, "guests", "email", true},
	{&models.PaymentStatus{}, "payment_statuses", "payment_status_name", true},
	{&models.RoomStatus{}, "room_statuses", "status_name", true},
	{&models.Room{}, "rooms", "room_number", true},
	{&models.RoomClass{}, "room_classes", "class_name", true},
}

// Migrate creates tables parent first, then the business-key unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Floor{},
		&models.BedType{},
		&models.Feature{},
		&models.RoomStatus{},
		&models.PaymentStatus{},
		&models.Addon{},
		&models.Guest{},
		&models.RoomClass{},
		&models.RoomClassBedType{},
		&models.RoomClassFeature{},
		&models.Room{},
		&models.ActivityLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, k := range businessKeys {
		if err := ensureUniqueIndex(db, k); err != nil {
			return err
		}
	}
	return nil
}

// ensureUniqueIndex indexes the folded name_key for text keys and the column itself otherwise.
func ensureUniqueIndex(db *gorm.DB, k businessKey) error {
	name := fmt.Sprintf("ux_%s_%s", k.table, k.column)
	if db.Migrator().HasIndex(k.model, name) {
		return nil
	}

	expr := k.column
	if k.text {
		expr = models.NameKeyColumn
	}
	stmt := fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", name, k.table, expr)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	return nil
}

// SeedDatabase fills the lookup tables on first start.
func SeedDatabase(db *gorm.DB) error {
	var statusCount int64
	if err := db.Model(&models.RoomStatus{}).Count(&statusCount).Error; err != nil {
		return fmt.Errorf("seed room statuses: %w", err)
	}
	if statusCount == 0 {
		statuses := []models.RoomStatus{
			{StatusName: "Available", Description: "Ready for guests", IsAvailable: true},
			{StatusName: "Occupied", Description: "Guest in house"},
			{StatusName: "Maintenance", Description: "Out of order"},
		}
		if err := db.Create(&statuses).Error; err != nil {
			return fmt.Errorf("seed room statuses: %w", err)
		}
		log.Println("Room statuses seeded")
	}

	var paymentCount int64
	if err := db.Model(&models.PaymentStatus{}).Count(&paymentCount).Error; err != nil {
		return fmt.Errorf("seed payment statuses: %w", err)
	}
	if paymentCount == 0 {
		payments := []models.PaymentStatus{
			{PaymentStatusName: "Pending"},
			{PaymentStatusName: "Paid"},
			{PaymentStatusName: "Refunded"},
		}
		if err := db.Create(&payments).Error; err != nil {
			return fmt.Errorf("seed payment statuses: %w", err)
		}
		log.Println("Payment statuses seeded")
	}
	return nil
}
