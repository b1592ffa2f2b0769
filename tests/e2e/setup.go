//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"fablab-billing/cmd/bootstrap"
	"fablab-billing/cmd/bootstrap/components"
	"fablab-billing/internal/infra/db"
	"fablab-billing/internal/pkg/config"
	"fablab-billing/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "fablab"
	pgPassword = "fablab-e2e"
)

var (
	containersOnce sync.Once
	containersErr  error
	pgContainer    testcontainers.Container
	redisContainer testcontainers.Container
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) addr() string {
	return e.Host + ":" + e.Port.Port()
}

type environment struct {
	pool   *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
	cfg    config.Config
}

// テストプロセスごとに独立したDBを用意し、fxでアプリを組み立てる
func newEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)

	pg, rd := sharedContainers(t)

	dbCfg := createDatabase(t, pg)
	require.NoError(t, migrate(dbCfg), "マイグレーションの適用に失敗")

	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err, "DB接続に失敗")
	t.Cleanup(pool.Close)
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis = config.RedisConfig{Addr: rd.addr(), PricingCacheTTL: time.Minute}

	env := environment{pool: pool, cfg: cfg}
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			bootstrap.NewBillingConfig,
		),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.router, &env.redis),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリの停止に失敗", "error", err.Error())
		}
	})

	require.NotNil(t, env.router, "Routerが構築されていない")
	require.NotNil(t, env.redis, "Redisクライアントが構築されていない")
	return env
}

// コンテナはプロセス内で一度だけ起動する
func sharedContainers(t *testing.T) (endpoint, endpoint) {
	containersOnce.Do(func() {
		pgContainer, containersErr = runContainer(postgresRequest())
		if containersErr != nil {
			return
		}
		redisContainer, containersErr = runContainer(redisRequest())
	})
	require.NoError(t, containersErr, "コンテナの起動に失敗")

	pg, err := mappedEndpoint(pgContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLのポート取得に失敗")
	rd, err := mappedEndpoint(redisContainer, "6379/tcp")
	require.NoError(t, err, "Redisのポート取得に失敗")
	return pg, rd
}

func runContainer(req testcontainers.ContainerRequest) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	// 後片付けはryukに任せる
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func postgresRequest() testcontainers.ContainerRequest {
	tuning := map[string]string{
		"fsync":              "off",
		"full_page_writes":   "off",
		"synchronous_commit": "off",
		"shared_buffers":     "256MB",
		"max_connections":    "200",
		"log_statement":      "none",
	}
	cmd := []string{"postgres"}
	for _, k := range sortedKeys(tuning) {
		cmd = append(cmd, "-c", k+"="+tuning[k])
	}

	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上に置く
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(endpoint{Host: host, Port: port})
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "fablab-billing-e2e"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "fablab-billing-e2e"},
	}
}

func mappedEndpoint(c testcontainers.Container, port string) (endpoint, error) {
	ctx := context.Background()
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.addr())
}

// テストプロセス専用のデータベースを作り、終了時に削除する
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	name := "billing_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理用接続に失敗")
	defer admin.Close()

	// 並列実行時はCREATE DATABASEが衝突することがあるので数回やり直す
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成をリトライ", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			slog.Warn("削除用の接続に失敗", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Manila",
	}
}

// migrate applies migrations/*.sql in file name order.
func migrate(cfg config.DBConfig) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	pool, _, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// go test runs inside the package directory, so walk up until migrations/ shows up.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.Router = env.router
	s.DB = env.pool
	s.Redis = env.redis
	s.Config = env.cfg
}

// サブテストごとにDBとキャッシュを初期状態へ戻す
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "キャッシュのクリアに失敗")
}
