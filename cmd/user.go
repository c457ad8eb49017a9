package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anoixa/group-gallery/config"
	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/internal/auth"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// userCmd 用户管理命令
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
}

// userCreateCmd 从命令行注册用户
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a user account",
	Long: `Register a user account from the shell.

Example:
  group-gallery user create --email alice@example.com --name Alice --password 'correct horse'`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")

		config.InitConfig()
		db, err := database.NewDB(config.Get())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		id, err := createUser(db, email, name, password)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		fmt.Printf("User %d created\n", id)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().String("email", "", "Email address (login name)")
	userCreateCmd.Flags().String("name", "", "Display name")
	userCreateCmd.Flags().String("password", "", "Password (at least 8 characters)")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("password")
}

// createUser 迁移表结构后注册用户；不签发令牌，因此不需要 JWT 配置
func createUser(db *gorm.DB, email, name, password string) (uint, error) {
	if err := database.AutoMigrate(db); err != nil {
		return 0, fmt.Errorf("failed to migrate schema: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := auth.NewLoginService(accounts.NewRepository(db), nil).Register(ctx, email, name, password)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
