package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/base/guard"
	"github.com/archetype-labs/minter-suite/base/log"
	bValidator "github.com/archetype-labs/minter-suite/base/validator"
	"github.com/archetype-labs/minter-suite/domain"
	mdomain "github.com/archetype-labs/minter-suite/domain/minter"
	mmiddleware "github.com/archetype-labs/minter-suite/middleware"
	"github.com/archetype-labs/minter-suite/service/chain"
	"github.com/archetype-labs/minter-suite/service/chain/contract"
	"github.com/archetype-labs/minter-suite/service/query"
	"github.com/archetype-labs/minter-suite/service/redis"
	allowlist_repository "github.com/archetype-labs/minter-suite/stores/allowlist/repository"
	allowlist_usecase "github.com/archetype-labs/minter-suite/stores/allowlist/usecase"
	auction_repository "github.com/archetype-labs/minter-suite/stores/auction/repository"
	auction_usecase "github.com/archetype-labs/minter-suite/stores/auction/usecase"
	auth_delivery "github.com/archetype-labs/minter-suite/stores/auth/delivery/http"
	auth_middleware "github.com/archetype-labs/minter-suite/stores/auth/delivery/http/middleware"
	auth_repository "github.com/archetype-labs/minter-suite/stores/auth/repository"
	auth_usecase "github.com/archetype-labs/minter-suite/stores/auth/usecase"
	hc_delivery "github.com/archetype-labs/minter-suite/stores/healthcheck/delivery/http"
	hc_repo "github.com/archetype-labs/minter-suite/stores/healthcheck/repository"
	hc_usecase "github.com/archetype-labs/minter-suite/stores/healthcheck/usecase"
	invocations_repository "github.com/archetype-labs/minter-suite/stores/invocations/repository"
	invocations_usecase "github.com/archetype-labs/minter-suite/stores/invocations/usecase"
	minter_delivery "github.com/archetype-labs/minter-suite/stores/minter/delivery/http"
	minter_repository "github.com/archetype-labs/minter-suite/stores/minter/repository"
	minter_usecase "github.com/archetype-labs/minter-suite/stores/minter/usecase"
	registry_delivery "github.com/archetype-labs/minter-suite/stores/registry/delivery/http"
	registry_repository "github.com/archetype-labs/minter-suite/stores/registry/repository"
	registry_usecase "github.com/archetype-labs/minter-suite/stores/registry/usecase"
	splitter_repository "github.com/archetype-labs/minter-suite/stores/splitter/repository"
	splitter_usecase "github.com/archetype-labs/minter-suite/stores/splitter/usecase"
	wallet_delivery "github.com/archetype-labs/minter-suite/stores/wallet/delivery/http"
	wallet_repository "github.com/archetype-labs/minter-suite/stores/wallet/repository"
	wallet_usecase "github.com/archetype-labs/minter-suite/stores/wallet/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCache := redis.New(&redis.Cfg{
		Uri:       viper.GetString("redis.uri"),
		MaxIdle:   viper.GetInt("redis.maxIdle"),
		MaxActive: viper.GetInt("redis.maxActive"),
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	context.Info("init chain service")
	chainId := viper.GetInt32("chain.chainId")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: map[int32]string{
			chainId: viper.GetString("chain.rpcUrl"),
		},
		SignerKey: viper.GetString("chain.signerKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	coreContract := contract.NewCore(chainService, chainId)
	coreRegistry := contract.NewCoreRegistry(chainService, chainId)
	erc20Contract := contract.NewErc20(chainService, chainId)
	erc721Contract := contract.NewErc721(chainService, chainId)
	delegationRegistry := contract.NewDelegationRegistry(chainService, chainId, domain.Address(viper.GetString("delegation.registryAddress")))

	registryAddress := domain.Address(viper.GetString("registry.address")).ToLower()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := auth_repository.NewAccount(q)
	assignmentRepo := registry_repository.NewAssignment(q)
	approvalRepo := registry_repository.NewApproval(q)
	usageRepo := registry_repository.NewUsage(q)
	configRepo := registry_repository.NewConfig(q)
	invocationsRepo := invocations_repository.New(q)
	engineCacheRepo := splitter_repository.NewEngineCache(q)
	currencyRepo := splitter_repository.NewCurrency(q)
	balanceRepo := wallet_repository.New(q)
	allowlistRepo := allowlist_repository.New(q)
	linearAuctionRepo := auction_repository.NewLinear(q)
	exponentialAuctionRepo := auction_repository.NewExponential(q)
	fixedPriceRepo := minter_repository.NewFixedPrice(q)
	polyptychRepo := minter_repository.NewPolyptych(q)

	hc := hc_usecase.New(hcRepo)
	registryUC := registry_usecase.NewRegistryUseCase(&registry_usecase.RegistryUseCaseCfg{
		AssignmentRepo:  assignmentRepo,
		ApprovalRepo:    approvalRepo,
		UsageRepo:       usageRepo,
		ConfigRepo:      configRepo,
		CoreContract:    coreContract,
		CoreRegistry:    coreRegistry,
		RegistryAddress: registryAddress,
	})
	invocationsUC := invocations_usecase.NewInvocationsUseCase(&invocations_usecase.InvocationsUseCaseCfg{
		Repo:         invocationsRepo,
		CoreContract: coreContract,
	})
	splitterUC := splitter_usecase.NewSplitterUseCase(&splitter_usecase.SplitterUseCaseCfg{
		EngineCacheRepo: engineCacheRepo,
		CurrencyRepo:    currencyRepo,
		CoreContract:    coreContract,
		Erc20Contract:   erc20Contract,
		WalletRepo:      balanceRepo,
	})
	walletUC := wallet_usecase.NewWalletUseCase(&wallet_usecase.WalletUseCaseCfg{
		Repo: balanceRepo,
	})
	allowlistUC := allowlist_usecase.NewAllowlistUseCase(&allowlist_usecase.AllowlistUseCaseCfg{
		Repo:               allowlistRepo,
		CoreContract:       coreContract,
		Erc721Contract:     erc721Contract,
		DelegationRegistry: delegationRegistry,
	})
	linearAuctionUC := auction_usecase.NewLinearUseCase(&auction_usecase.LinearUseCaseCfg{
		Repo:                    linearAuctionRepo,
		CoreContract:            coreContract,
		InvocationsUseCase:      invocationsUC,
		RegistryAddress:         registryAddress,
		MinAuctionLengthSeconds: viper.GetUint64("auction.minAuctionLengthSeconds"),
	})
	exponentialAuctionUC := auction_usecase.NewExponentialUseCase(&auction_usecase.ExponentialUseCaseCfg{
		Repo:               exponentialAuctionRepo,
		CoreContract:       coreContract,
		InvocationsUseCase: invocationsUC,
		RegistryAddress:    registryAddress,
		MinHalfLifeSeconds: viper.GetUint64("auction.minHalfLifeSeconds"),
		MaxHalfLifeSeconds: viper.GetUint64("auction.maxHalfLifeSeconds"),
	})
	auth := auth_usecase.NewAuthUseCase(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		AccountRepo:        accountRepo,
	})

	purchaseGuard := guard.New()
	newBaseCfg := func(key string) *minter_usecase.MinterBaseCfg {
		return &minter_usecase.MinterBaseCfg{
			Address:            domain.Address(viper.GetString(key)).ToLower(),
			Guard:              purchaseGuard,
			CoreContract:       coreContract,
			RegistryUseCase:    registryUC,
			InvocationsUseCase: invocationsUC,
			SplitterUseCase:    splitterUC,
			WalletUseCase:      walletUC,
		}
	}

	minters := []mdomain.Minter{
		minter_usecase.NewSetPriceMinter(newBaseCfg("minters.setPrice"), fixedPriceRepo),
		minter_usecase.NewSetPriceERC20Minter(newBaseCfg("minters.setPriceERC20"), fixedPriceRepo),
		minter_usecase.NewDALinMinter(newBaseCfg("minters.daLin"), linearAuctionUC),
		minter_usecase.NewDAExpMinter(newBaseCfg("minters.daExp"), exponentialAuctionUC),
		minter_usecase.NewHolderMinter(newBaseCfg("minters.holder"), fixedPriceRepo, allowlistUC),
		minter_usecase.NewPolyptychMinter(newBaseCfg("minters.polyptych"), fixedPriceRepo, allowlistUC, polyptychRepo),
	}

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	registry_delivery.New(e, registryUC, authMiddleware)
	minter_delivery.New(e, minters, authMiddleware)
	wallet_delivery.New(e, walletUC, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
