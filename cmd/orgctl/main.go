package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/config"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	verbose      bool
	affiliateID  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to the DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	domainsCmd.PersistentFlags().StringVarP(&affiliateID, "affiliate", "a", "", "Affiliate id; global when empty")

	rolesCmd.AddCommand(rolesTreeCmd)
	domainsCmd.AddCommand(domainsBlockCmd)
	domainsCmd.AddCommand(domainsCheckCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(domainsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "orgctl",
	Short: "orgctl administers the organization database",
	Long:  `orgctl runs schema migrations and the administrative tasks that have no HTTP surface.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			return fmt.Errorf("enabling citext: %w", err)
		}
		if err := db.AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Schema migrated successfully")
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect the role hierarchy",
}

var rolesTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the role tree in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		roles, err := repository.NewRoleRepository(db).FindAll(cmd.Context())
		if err != nil {
			return err
		}
		printRoles(cmd.OutOrStdout(), model.BuildRoleTree(roles), 0)
		return nil
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Manage the email domain blocklist",
}

var domainsBlockCmd = &cobra.Command{
	Use:   "block [domain...]",
	Short: "Blacklist domains or top-level domains",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := domainService()
		if err != nil {
			return err
		}
		affiliate, err := parseAffiliate()
		if err != nil {
			return err
		}

		blocked, err := svc.Block(cmd.Context(), service.BlockDomainsInput{Domains: args, AffiliateID: affiliate})
		if err != nil {
			return err
		}

		for _, d := range blocked {
			fmt.Fprintf(cmd.OutOrStdout(), "blocked %s (%s)\n", d.Domain, d.Type)
		}
		return nil
	},
}

var domainsCheckCmd = &cobra.Command{
	Use:   "check [email]",
	Short: "Report whether an email address is blocked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := domainService()
		if err != nil {
			return err
		}
		affiliate, err := parseAffiliate()
		if err != nil {
			return err
		}

		blocked, err := svc.IsBlocked(cmd.Context(), args[0], affiliate)
		if err != nil {
			return err
		}
		if blocked {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is blocked\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is allowed\n", args[0])
		return nil
	},
}

func printRoles(w io.Writer, roles []model.Role, depth int) {
	for _, r := range roles {
		marker := ""
		if len(r.Children) == 0 {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s (%s)%s\n", strings.Repeat("  ", depth), r.Name, r.Slug, marker)
		printRoles(w, r.Children, depth+1)
	}
}

func parseAffiliate() (*uuid.UUID, error) {
	if affiliateID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(affiliateID)
	if err != nil {
		return nil, fmt.Errorf("invalid affiliate id %q: %w", affiliateID, err)
	}
	return &id, nil
}

func domainService() (*service.DomainService, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	return service.NewDomainService(repository.NewTxManager(db), repository.NewDomainRepository(db)), nil
}

func openDB() (*gorm.DB, error) {
	dsn := dbConnString
	if dsn == "" {
		dsn = config.Load().DSN()
	}

	level := logger.Silent
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
