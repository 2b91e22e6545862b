package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MarketDash/internal/calculator"
	"MarketDash/internal/collector"
	"MarketDash/internal/config"
	"MarketDash/internal/model"
	"MarketDash/internal/notifier"
	"MarketDash/internal/recorder"
	"MarketDash/internal/registry"
	"MarketDash/internal/report"
	"MarketDash/internal/scheduler"
)

// Report timestamps are anchored to Singapore time regardless of host zone.
var sgt = time.FixedZone("SGT", 8*60*60)

const benchmarkSymbol = "SPY"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketDash starting...")

	cfgPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	noEmail := flag.Bool("no-email", false, "skip email delivery")
	flag.Parse()

	path := *cfgPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if *noEmail {
		cfg.Email.Sender = ""
		cfg.Email.Password = ""
		cfg.Email.Recipient = ""
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)
	mail := notifier.NewEmailNotifier(cfg)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	job := func() { run(col, mail, rec, cfg.Report.OutputPath) }

	// One-shot by default; a cron spec switches to long-running mode for
	// hosts without an external scheduler.
	if cfg.Schedule.Cron == "" {
		job()
		log.Println("[INFO] done")
		return
	}

	sched := scheduler.NewScheduler(job)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, generating report now")
		go job()
	}

	log.Println("[INFO] MarketDash is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

// run executes one report pipeline pass: fetch each asset class, compute its
// rows, assemble the document, dispatch, record. No stage's failure aborts
// the remaining stages; downstream stages degrade on empty input.
func run(col *collector.Collector, mail *notifier.EmailNotifier, rec recorder.Recorder, outputPath string) {
	started := time.Now()
	now := time.Now().In(sgt)
	log.Printf("[INFO] run time: %s", now.Format("2006-01-02 15:04 SGT"))

	log.Println("[1/6] fetching equity & sector data...")
	equityCloses := col.FetchCloses(registry.Symbols(registry.Equities), "5y")
	equityRows := calculator.ComputeReturns(equityCloses, registry.Equities, registry.Windows)
	log.Printf("  -> %d tickers fetched", len(equityRows))

	log.Println("[2/6] fetching crypto data...")
	cryptoCloses := col.FetchCloses(registry.Symbols(registry.Crypto), "5y")
	cryptoRows := calculator.ComputeReturns(cryptoCloses, registry.Crypto, registry.Windows)
	log.Printf("  -> %d tickers fetched", len(cryptoRows))

	log.Println("[3/6] fetching metal proxy ETFs...")
	proxyCloses := col.FetchCloses(registry.Symbols(registry.MetalProxies), "5y")
	proxyRows := calculator.ComputeReturns(proxyCloses, registry.MetalProxies, registry.Windows)
	log.Printf("  -> %d tickers fetched", len(proxyRows))

	log.Println("[4/6] fetching bond yields...")
	bondCloses := col.FetchCloses(registry.Symbols(registry.Bonds), "1y")
	yieldRows := calculator.ComputeYieldChanges(bondCloses)
	log.Printf("  -> %d bond maturities fetched", len(yieldRows))

	log.Println("[5/6] fetching precious metals...")
	metalCloses := col.FetchCloses(registry.Symbols(registry.Metals), "5d")
	metalRows := calculator.ComputeSpotMoves(metalCloses, registry.Metals)
	log.Printf("  -> %d metals fetched", len(metalRows))

	log.Println("[6/6] generating PDF report...")
	doc := report.Assemble(equityRows, cryptoRows, proxyRows, yieldRows, metalRows, now)
	chartPNG := benchmarkChart(equityCloses[benchmarkSymbol])

	emailed, err := mail.Dispatch(doc, chartPNG, now)
	if err != nil {
		log.Printf("[ERROR] render report: %v", err)
		return
	}

	if err := rec.RecordRun(&model.RunRecord{
		EquityRows: len(equityRows),
		CryptoRows: len(cryptoRows),
		ProxyRows:  len(proxyRows),
		BondRows:   len(yieldRows),
		MetalRows:  len(metalRows),
		ReportPath: outputPath,
		Emailed:    emailed,
		Duration:   time.Since(started),
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

// benchmarkChart renders the trailing 1-year benchmark chart, or nil when
// there is not enough history. The report renders fine without it.
func benchmarkChart(series []model.ClosePoint) []byte {
	if len(series) > 252 {
		series = series[len(series)-252:]
	}
	png, err := report.RenderBenchmarkChart(series, benchmarkSymbol+" — 1 Year")
	if err != nil {
		log.Printf("[WARN] benchmark chart: %v", err)
		return nil
	}
	return png
}
