package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vfg2006/attribution-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/config"
	"github.com/vfg2006/attribution-insights-api/internal/simulation"
	"github.com/vfg2006/attribution-insights-api/pkg/utils"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de carga de dados simulados...")
}

func main() {
	setupLogger()

	dbPath := flag.String("db", "data/attribution.db", "caminho do arquivo SQLite")
	customers := flag.Int("customers", 1000, "quantidade de clientes simulados")
	seed := flag.Int64("seed", 42, "semente do gerador aleatório")
	startDateStr := flag.String("start-date", "", "data inicial das jornadas (YYYY-MM-DD, padrão: 90 dias atrás)")
	replace := flag.Bool("replace", true, "substituir touchpoints existentes")
	flag.Parse()

	startDate := time.Now().AddDate(0, 0, -90)
	if *startDateStr != "" {
		parsed, err := utils.ParseDate(*startDateStr)
		if err != nil {
			log.Fatalf("ERRO ao interpretar start-date: %v", err)
		}
		startDate = *parsed
	}

	ctx := context.Background()

	log.Println("Conectando ao banco de dados...")
	conn, err := sqlite.NewConnection(ctx, config.Database{
		Path: *dbPath,
		DSN:  config.BuildDSN(*dbPath),
	})
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := conn.InitSchema(ctx); err != nil {
		log.Fatalf("ERRO ao inicializar o schema: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	log.Printf("Gerando jornadas para %d clientes (seed=%d, início=%s)...",
		*customers, *seed, startDate.Format("2006-01-02"))

	startTime := time.Now()

	simulator := simulation.NewSimulator(*seed)
	touchpoints := simulator.GenerateDataset(*customers, startDate)

	log.Printf("Gerados %d touchpoints em %v", len(touchpoints), time.Since(startTime))

	repo := repository.NewTouchpointRepository(conn)

	loadStart := time.Now()
	if *replace {
		err = repo.ReplaceAll(ctx, touchpoints)
	} else {
		err = repo.AppendBatch(ctx, touchpoints)
	}
	if err != nil {
		log.Fatalf("ERRO ao carregar touchpoints no banco: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		log.Fatalf("ERRO ao consultar estatísticas: %v", err)
	}

	log.Printf("Carga concluída em %v. Linhas: %d, Clientes: %d, Conversões: %d, Receita total: %.2f",
		time.Since(loadStart), stats.TotalRows, stats.TotalCustomers, stats.TotalConversions, stats.TotalConversionValue)
}
