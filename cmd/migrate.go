package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anoixa/group-gallery/config"
	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// migrateCmd 数据库迁移命令
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
		cfg := config.Get()

		db, err := database.NewDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to auto migrate database: %v", err)
		}
		log.Printf("Database schema is up to date (%s)", cfg.DBType)
	},
}

// migrateCopyCmd 在两个数据库之间复制数据
var migrateCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy all data from one database to another",
	Long: `Copy all data from one database to another (e.g., SQLite to PostgreSQL).

Examples:
  # Copy from SQLite to PostgreSQL
  group-gallery migrate copy --from-sqlite ./data/gallery.db --to-postgres "host=localhost user=postgres password=secret dbname=gallery port=5432"

  # Replace rows that already exist in the target
  group-gallery migrate copy --from-sqlite ./data/gallery.db --to-postgres "..." --on-conflict=overwrite`,
	Run: func(cmd *cobra.Command, args []string) {
		fromSQLite, _ := cmd.Flags().GetString("from-sqlite")
		toPostgres, _ := cmd.Flags().GetString("to-postgres")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		onConflict, _ := cmd.Flags().GetString("on-conflict")

		if err := runCopy(fromSQLite, toPostgres, batchSize, onConflict); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateCopyCmd)

	migrateCopyCmd.Flags().String("from-sqlite", "", "Source SQLite file path")
	migrateCopyCmd.Flags().String("to-postgres", "", "Target PostgreSQL connection string")
	migrateCopyCmd.Flags().Int("batch-size", 500, "Rows per batch")
	migrateCopyCmd.Flags().String("on-conflict", "skip", "Conflict resolution strategy: skip (default) or overwrite")
	_ = migrateCopyCmd.MarkFlagRequired("from-sqlite")
	_ = migrateCopyCmd.MarkFlagRequired("to-postgres")
}

// copyStats 每张表复制的行数
type copyStats struct {
	tables []string
	rows   map[string]int64
}

func runCopy(fromSQLite, toPostgres string, batchSize int, onConflict string) error {
	if onConflict != "skip" && onConflict != "overwrite" {
		return fmt.Errorf("invalid on-conflict strategy: %s (must be skip or overwrite)", onConflict)
	}

	source, err := openDatabase(sqlite.Open(fromSQLite))
	if err != nil {
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	defer database.Close(source)

	target, err := openDatabase(postgres.Open(toPostgres))
	if err != nil {
		return fmt.Errorf("failed to connect to target database: %w", err)
	}
	defer database.Close(target)

	log.Printf("Copying from %s to %s (%s)", fromSQLite, maskDSN(toPostgres), onConflict)
	stats, err := copyAll(context.Background(), source, target, batchSize, onConflict == "overwrite")
	if stats != nil {
		printCopyStats(stats)
	}
	if err != nil {
		return err
	}

	if err := resetSequences(target, "users", "groups", "albums", "media", "comments", "reactions"); err != nil {
		return fmt.Errorf("failed to reset sequences: %w", err)
	}

	log.Println("Migration completed successfully!")
	return nil
}

// copyAll 先迁移目标表结构，再按外键依赖顺序逐表复制
func copyAll(ctx context.Context, source, target *gorm.DB, batchSize int, overwrite bool) (*copyStats, error) {
	if err := database.AutoMigrate(target); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	stats := &copyStats{rows: make(map[string]int64)}
	steps := []struct {
		table string
		copy  func() (int64, error)
	}{
		{"users", func() (int64, error) { return copyTable[models.User](ctx, source, target, "id", batchSize, overwrite) }},
		{"groups", func() (int64, error) { return copyTable[models.Group](ctx, source, target, "id", batchSize, overwrite) }},
		{"group_members", func() (int64, error) { return copyTable[models.GroupMember](ctx, source, target, "group_id, user_id", batchSize, overwrite) }},
		{"albums", func() (int64, error) { return copyTable[models.Album](ctx, source, target, "id", batchSize, overwrite) }},
		{"media", func() (int64, error) { return copyTable[models.Media](ctx, source, target, "id", batchSize, overwrite) }},
		{"comments", func() (int64, error) { return copyTable[models.Comment](ctx, source, target, "id", batchSize, overwrite) }},
		{"reactions", func() (int64, error) { return copyTable[models.Reaction](ctx, source, target, "id", batchSize, overwrite) }},
	}

	for _, step := range steps {
		log.Printf("Migrating %s...", step.table)
		n, err := step.copy()
		stats.tables = append(stats.tables, step.table)
		stats.rows[step.table] = n
		if err != nil {
			return stats, fmt.Errorf("%s migration failed: %w", step.table, err)
		}
	}
	return stats, nil
}

// copyTable 按主键顺序分批复制一张表，包括软删除的行；关联字段不随行写入
func copyTable[T any](ctx context.Context, source, target *gorm.DB, order string, batchSize int, overwrite bool) (int64, error) {
	onConflict := clause.OnConflict{DoNothing: true}
	if overwrite {
		onConflict = clause.OnConflict{UpdateAll: true}
	}

	var copied int64
	for offset := 0; ; offset += batchSize {
		var batch []T
		if err := source.WithContext(ctx).Unscoped().Order(order).Limit(batchSize).Offset(offset).Find(&batch).Error; err != nil {
			return copied, err
		}
		if len(batch) == 0 {
			return copied, nil
		}

		res := target.WithContext(ctx).Omit(clause.Associations).Clauses(onConflict).Create(&batch)
		if res.Error != nil {
			return copied, res.Error
		}
		copied += res.RowsAffected

		if len(batch) < batchSize {
			return copied, nil
		}
	}
}

// resetSequences 显式写入主键后把 PostgreSQL 序列推进到当前最大值
func resetSequences(db *gorm.DB, tables ...string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range tables {
		sql := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]q), 0) + 1, false)`,
			table)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("%s: %w", table, err)
		}
	}
	return nil
}

// openDatabase 打开数据库连接
func openDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// maskDSN 隐藏连接串中的密码
func maskDSN(dsn string) string {
	fields := strings.Fields(dsn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=***"
		}
	}
	return strings.Join(fields, " ")
}

// printCopyStats 打印迁移统计
func printCopyStats(stats *copyStats) {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("       Migration Statistics")
	fmt.Println("========================================")
	for _, table := range stats.tables {
		fmt.Printf("%-15s %d\n", table+":", stats.rows[table])
	}
	fmt.Println("========================================")
}
