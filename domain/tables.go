package domain

// Table is the mongo collection name type
type Table string

const (
	TableAccounts              Table = "accounts"
	TableMinterAssignments     Table = "minter_assignments"
	TableMinterApprovals       Table = "minter_approvals"
	TableMinterUsages          Table = "minter_usages"
	TableRegistryConfigs       Table = "registry_configs"
	TableMaxInvocations        Table = "max_invocations"
	TableEngineCaches          Table = "engine_caches"
	TableProjectPrices         Table = "project_prices"
	TableProjectCurrencies     Table = "project_currencies"
	TableLinearAuctions        Table = "linear_auctions"
	TableExponentialAuctions   Table = "exponential_auctions"
	TableHolderAllowlists      Table = "holder_allowlists"
	TableBalances              Table = "balances"
	TablePolyptychPanels       Table = "polyptych_panels"
	TablePolyptychSeedMints    Table = "polyptych_seed_mints"
	TableHealthChecks          Table = "health_checks"
)
