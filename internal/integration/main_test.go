//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/AliHaider728/royal-palm-map-clone/internal/app"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

var (
	application *app.App
	repos       app.Repos
)

func TestMain(m *testing.M) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL not set; skipping integration tests")
		os.Exit(0)
	}
	utils.InitLogger("plotmap-integration")

	var err error
	application, err = app.NewApp(context.Background(), dbURL)
	if err != nil {
		fmt.Println("connect:", err)
		os.Exit(1)
	}
	if err := app.Migrate(context.Background(), application.DB); err != nil {
		fmt.Println("migrate:", err)
		os.Exit(1)
	}
	repos = app.NewRepos(application.DB)

	code := m.Run()
	application.Close()
	os.Exit(code)
}
