// Copyright © 2025 MEVShield Pool contributors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	// #nosec G108
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	execclient "github.com/attestantio/go-execution-client"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	majordomo "github.com/wealdtech/go-majordomo"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	execseedauction "github.com/Najnomics/MEVShieldPool-sub001/services/auction/execseed"
	standardauction "github.com/Najnomics/MEVShieldPool-sub001/services/auction/standard"
	standardbatchprocessor "github.com/Najnomics/MEVShieldPool-sub001/services/batchprocessor/standard"
	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
	localbidcrypt "github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt/local"
	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	standardchaintime "github.com/Najnomics/MEVShieldPool-sub001/services/chaintime/standard"
	"github.com/Najnomics/MEVShieldPool-sub001/services/commitreveal"
	standardcommitreveal "github.com/Najnomics/MEVShieldPool-sub001/services/commitreveal/standard"
	standarddistributor "github.com/Najnomics/MEVShieldPool-sub001/services/distributor/standard"
	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	ledgersinkexecutor "github.com/Najnomics/MEVShieldPool-sub001/services/executor/ledgersink"
	standardexecutor "github.com/Najnomics/MEVShieldPool-sub001/services/executor/standard"
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	nullmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/null"
	prometheusmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/prometheus"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"
	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"
	staticpricefeed "github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed/static"
	"github.com/Najnomics/MEVShieldPool-sub001/services/scheduler"
	standardscheduler "github.com/Najnomics/MEVShieldPool-sub001/services/scheduler/standard"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/Najnomics/MEVShieldPool-sub001/util"
)

// ReleaseVersion is the release version for the code.
var ReleaseVersion = "0.1.0-dev"

func main() {
	os.Exit(main2())
}

func main2() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := fetchConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch configuration: %v\n", err)
		return 1
	}

	majordomoSvc, err := util.InitMajordomo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise majordomo: %v\n", err)
		return 1
	}

	if err := initLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logging: %v\n", err)
		return 1
	}

	// runCommands will not return if a command is run.
	runCommands(ctx)

	logModules()
	log.Info().Str("version", ReleaseVersion).Msg("Starting mevshieldd")

	if err := initTracing(ctx, majordomoSvc); err != nil {
		log.Error().Err(err).Msg("Failed to initialise tracing")
		return 1
	}

	runtime.GOMAXPROCS(runtime.NumCPU() * 8)

	log.Trace().Msg("Starting metrics service")
	monitor, err := startMonitor(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to start metrics service")
		return 1
	}
	if err := registerMetrics(ctx, monitor); err != nil {
		log.Error().Err(err).Msg("Failed to register metrics")
		return 1
	}
	setRelease(ctx, ReleaseVersion)
	setReady(ctx, false)

	if err := startServices(ctx, monitor, majordomoSvc); err != nil {
		log.Error().Err(err).Msg("Failed to initialise services")
		return 1
	}
	setReady(ctx, true)

	log.Info().Msg("All services operational")

	// Wait for signal.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	for {
		sig := <-sigCh
		if sig == syscall.SIGINT || sig == syscall.SIGTERM || sig == os.Interrupt || sig == os.Kill {
			break
		}
	}

	log.Info().Msg("Stopping mevshieldd")

	return 0
}

// fetchConfig fetches configuration from various sources.
func fetchConfig() error {
	pflag.String("base-dir", "", "base directory for configuration files")
	pflag.Bool("version", false, "show version and exit")
	pflag.String("log-level", "info", "minimum level of messsages to log")
	pflag.String("log-file", "", "redirect log output to a file")
	pflag.String("profile-address", "", "Address on which to run Go profile server")
	pflag.String("tracing-address", "", "Address to which to send tracing data")
	pflag.Duration("execclient.timeout", 60*time.Second, "Timeout for execution client requests")
	pflag.Duration("auction.round-duration", 300*time.Second, "Duration of each auction round")
	pflag.String("auction.min-bid", "0", "Minimum acceptable bid in wei")
	pflag.Duration("commitreveal.reveal-window", 60*time.Second, "Window in which a committed order may be revealed")
	pflag.Duration("executor.min-delay", 0, "Minimum execution delay for scheduled orders")
	pflag.Duration("executor.max-delay", 300*time.Second, "Maximum execution delay for scheduled orders")
	pflag.Uint32("distributor.lp-share-bps", 9000, "Liquidity provider share of captured MEV in basis points")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return errors.Wrap(err, "failed to bind pflags to viper")
	}

	if viper.GetString("base-dir") != "" {
		// User-defined base directory.
		viper.AddConfigPath(util.ResolvePath(""))
		viper.SetConfigName("mevshieldd")
	} else {
		// Home directory.
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "failed to obtain home directory")
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mevshieldd")
	}

	// Environment settings.
	viper.SetEnvPrefix("MEVSHIELDD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Defaults.
	viper.SetDefault("timeout", 60*time.Second)
	viper.SetDefault("process-concurrency", int64(runtime.GOMAXPROCS(-1)))
	viper.SetDefault("commitreveal.sweep-interval", time.Minute)
	viper.SetDefault("executor.dispatch-interval", time.Second)
	viper.SetDefault("distributor.protocol-share-bps", 1000)
	viper.SetDefault("batchprocessor.max-lanes", 32)

	if err := viper.ReadInConfig(); err != nil {
		switch {
		case errors.As(err, &viper.ConfigFileNotFoundError{}):
			// It is allowable for mevshieldd to not have a configuration file, but only if
			// we have the information from elsewhere (e.g. environment variables).  Check
			// to see if we have a shield database server configured, as if not we aren't
			// going to get very far anyway.
			if viper.Get("version") == nil && viper.GetString("shielddb.server") == "" {
				// Assume the underlying issue is that the configuration file is missing.
				return errors.Wrap(err, "could not find the configuration file")
			}
		case errors.As(err, &viper.ConfigParseError{}):
			return errors.Wrap(err, "could not parse the configuration file")
		default:
			return errors.Wrap(err, "failed to obtain configuration")
		}
	}

	return nil
}

func startMonitor(ctx context.Context) (metrics.Service, error) {
	var monitor metrics.Service
	if viper.Get("metrics.prometheus.listen-address") != nil {
		var err error
		monitor, err = prometheusmetrics.New(ctx,
			prometheusmetrics.WithLogLevel(util.LogLevel("metrics.prometheus")),
			prometheusmetrics.WithAddress(viper.GetString("metrics.prometheus.listen-address")),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to start prometheus metrics service")
		}
		log.Info().
			Str("listen_address", viper.GetString("metrics.prometheus.listen-address")).
			Msg("Started prometheus metrics service")
	} else {
		log.Debug().Msg("No metrics service supplied; monitor not starting")
		monitor = &nullmetrics.Service{}
	}

	return monitor, nil
}

func startServices(ctx context.Context, monitor metrics.Service, majordomoSvc majordomo.Service) error {
	log.Trace().Msg("Starting shield database")
	shieldDB, err := util.InitShieldDB(ctx, majordomoSvc)
	if err != nil {
		return errors.Wrap(err, "failed to start shield database")
	}

	schedulerSvc, err := standardscheduler.New(ctx,
		standardscheduler.WithLogLevel(util.LogLevel("scheduler")),
		standardscheduler.WithMonitor(monitor),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start scheduler service")
	}

	executionClient, err := util.FetchExecutionClient(ctx, viper.GetString("execclient.address"))
	if err != nil {
		return errors.Wrap(err, "failed to start execution client")
	}

	seedProvider, err := execseedauction.New(ctx,
		execseedauction.WithLogLevel(util.LogLevel("auction.execseed")),
		execseedauction.WithBlocksProvider(executionClient.(execclient.BlocksProvider)),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start round seed provider")
	}

	chainTime, err := standardchaintime.New(ctx,
		standardchaintime.WithLogLevel(util.LogLevel("chaintime")),
		standardchaintime.WithGenesisTime(viper.GetTime("genesis-time")),
		standardchaintime.WithRoundDuration(viper.GetDuration("auction.round-duration")),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start chain time service")
	}

	payoutSink, err := ledgerpayout.New(ctx,
		ledgerpayout.WithLogLevel(util.LogLevel("payout")),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start payout ledger")
	}

	log.Trace().Msg("Starting auction service")
	if _, err := startAuction(ctx, shieldDB, monitor, majordomoSvc, chainTime, payoutSink, seedProvider); err != nil {
		return errors.Wrap(err, "failed to start auction service")
	}

	log.Trace().Msg("Starting execution scheduler service")
	executorSvc, err := startExecutor(ctx, shieldDB, monitor, schedulerSvc, chainTime, payoutSink)
	if err != nil {
		return errors.Wrap(err, "failed to start execution scheduler service")
	}

	log.Trace().Msg("Starting commit-reveal service")
	if _, err := standardcommitreveal.New(ctx,
		standardcommitreveal.WithLogLevel(util.LogLevel("commitreveal")),
		standardcommitreveal.WithMonitor(monitor),
		standardcommitreveal.WithChainTime(chainTime),
		standardcommitreveal.WithScheduler(schedulerSvc),
		standardcommitreveal.WithRevealWindow(viper.GetDuration("commitreveal.reveal-window")),
		standardcommitreveal.WithSweepInterval(viper.GetDuration("commitreveal.sweep-interval")),
		standardcommitreveal.WithRevealedHandlers([]commitreveal.RevealedHandler{executorSvc.(commitreveal.RevealedHandler)}),
	); err != nil {
		return errors.Wrap(err, "failed to start commit-reveal service")
	}

	log.Trace().Msg("Starting batch processor service")
	minProfit, err := bigFromConfig("batchprocessor.min-profit")
	if err != nil {
		return err
	}
	if _, err := standardbatchprocessor.New(ctx,
		standardbatchprocessor.WithLogLevel(util.LogLevel("batchprocessor")),
		standardbatchprocessor.WithMonitor(monitor),
		standardbatchprocessor.WithChainTime(chainTime),
		standardbatchprocessor.WithPayoutSink(payoutSink),
		standardbatchprocessor.WithMinProfit(minProfit),
		standardbatchprocessor.WithMaxLanes(viper.GetInt("batchprocessor.max-lanes")),
	); err != nil {
		return errors.Wrap(err, "failed to start batch processor service")
	}

	return nil
}

func startAuction(
	ctx context.Context,
	shieldDB shielddb.Service,
	monitor metrics.Service,
	majordomoSvc majordomo.Service,
	chainTime chaintime.Service,
	payoutSink payout.Sink,
	seedProvider auction.SeedProvider,
) (auction.Service, error) {
	distributorSvc, err := standarddistributor.New(ctx,
		standarddistributor.WithLogLevel(util.LogLevel("distributor")),
		standarddistributor.WithMonitor(monitor),
		standarddistributor.WithPayoutSink(payoutSink),
		standarddistributor.WithLPShareBps(viper.GetUint32("distributor.lp-share-bps")),
		standarddistributor.WithProtocolShareBps(viper.GetUint32("distributor.protocol-share-bps")),
		standarddistributor.WithLPRecipient(viper.GetString("distributor.lp-recipient")),
		standarddistributor.WithTreasuryRecipient(viper.GetString("distributor.treasury-recipient")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create distributor service")
	}

	minBid, err := bigFromConfig("auction.min-bid")
	if err != nil {
		return nil, err
	}

	params := []standardauction.Parameter{
		standardauction.WithLogLevel(util.LogLevel("auction")),
		standardauction.WithMonitor(monitor),
		standardauction.WithChainTime(chainTime),
		standardauction.WithPayoutSink(payoutSink),
		standardauction.WithSeedProvider(seedProvider),
		standardauction.WithMinBid(minBid),
		standardauction.WithRoundDuration(viper.GetDuration("auction.round-duration")),
		standardauction.WithSettledHandlers([]auction.SettledHandler{distributorSvc}),
		standardauction.WithSettlementsSetter(shieldDB.(shielddb.SettlementsSetter)),
	}

	if viper.GetString("bidcrypt.secret-url") != "" {
		secret, err := majordomoSvc.Fetch(ctx, viper.GetString("bidcrypt.secret-url"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch bid oracle secret")
		}
		bidOracle, err := localbidcrypt.New(ctx,
			localbidcrypt.WithLogLevel(util.LogLevel("bidcrypt")),
			localbidcrypt.WithSecret(secret),
			localbidcrypt.WithBalanceProvider(payoutSink.(bidcrypt.BalanceProvider)),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create bid oracle")
		}
		params = append(params, standardauction.WithBidOracle(bidOracle))
	}

	if len(viper.GetStringMapString("pricefeed.prices")) > 0 {
		prices := make(map[string]decimal.Decimal)
		for feed, price := range viper.GetStringMapString("pricefeed.prices") {
			value, err := decimal.NewFromString(price)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid price for feed %s", feed)
			}
			prices[feed] = value
		}
		priceProvider, err := staticpricefeed.New(ctx,
			staticpricefeed.WithLogLevel(util.LogLevel("pricefeed")),
			staticpricefeed.WithPrices(prices),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create price feed")
		}
		params = append(params,
			standardauction.WithPriceProvider(priceProvider),
			standardauction.WithPriceFeedID(viper.GetString("pricefeed.feed-id")),
		)
		if viper.Get("pricefeed.max-age") != nil {
			params = append(params, standardauction.WithPricePolicy(&pricefeed.Policy{
				MaxAge: viper.GetDuration("pricefeed.max-age"),
			}))
		}
	}

	auctionSvc, err := standardauction.New(ctx, params...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create auction service")
	}

	return auctionSvc, nil
}

func startExecutor(
	ctx context.Context,
	shieldDB shielddb.Service,
	monitor metrics.Service,
	schedulerSvc scheduler.Service,
	chainTime chaintime.Service,
	payoutSink payout.Sink,
) (executor.Service, error) {
	settlementSink, err := ledgersinkexecutor.New(payoutSink)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create settlement sink")
	}

	executorSvc, err := standardexecutor.New(ctx,
		standardexecutor.WithLogLevel(util.LogLevel("executor")),
		standardexecutor.WithMonitor(monitor),
		standardexecutor.WithChainTime(chainTime),
		standardexecutor.WithSettlementSink(settlementSink),
		standardexecutor.WithScheduler(schedulerSvc),
		standardexecutor.WithScheduledOrdersSetter(shieldDB.(shielddb.ScheduledOrdersSetter)),
		standardexecutor.WithMinDelay(viper.GetDuration("executor.min-delay")),
		standardexecutor.WithMaxDelay(viper.GetDuration("executor.max-delay")),
		standardexecutor.WithRandomisationWindow(viper.GetDuration("executor.randomisation-window")),
		standardexecutor.WithVolumeWeighting(viper.GetBool("executor.volume-weighting")),
		standardexecutor.WithDispatchInterval(viper.GetDuration("executor.dispatch-interval")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create execution scheduler service")
	}

	return executorSvc, nil
}

// bigFromConfig parses a base 10 integer from the given configuration key.
func bigFromConfig(key string) (*big.Int, error) {
	input := viper.GetString(key)
	if input == "" {
		return new(big.Int), nil
	}
	value, success := new(big.Int).SetString(input, 10)
	if !success {
		return nil, fmt.Errorf("invalid value %q for %s", input, key)
	}

	return value, nil
}

func logModules() {
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		log.Trace().Str("path", buildInfo.Path).Msg("Main package")
		for _, dep := range buildInfo.Deps {
			log := log.Trace()
			if dep.Replace == nil {
				log = log.Str("path", dep.Path).Str("version", dep.Version)
			} else {
				log = log.Str("path", dep.Replace.Path).Str("version", dep.Replace.Version)
			}
			log.Msg("Dependency")
		}
	}
}

func runCommands(_ context.Context) {
	if viper.GetBool("version") {
		fmt.Fprintf(os.Stdout, "%s\n", ReleaseVersion)
		//nolint:revive
		os.Exit(0)
	}
}
