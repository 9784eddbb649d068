// Comando migrate aplica as migrações goose sobre o PostgreSQL configurado.
//
// Uso:
//
//	migrate [-dir migrations] <up|down|status|version> [args...]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jfirmino/armazem-api/pkg/config"
	"github.com/jfirmino/armazem-api/pkg/logger"
	"github.com/jfirmino/armazem-api/pkg/migrate"
)

func main() {
	dir := flag.String("dir", migrate.DefaultDir, "diretório das migrações SQL")
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir ligação ao PostgreSQL")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping ao PostgreSQL")
	}

	if err := migrate.Run(ctx, db, *dir, command, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migração falhou")
	}

	log.Info().Str("command", command).Str("dir", *dir).Msg("migração concluída")
}
