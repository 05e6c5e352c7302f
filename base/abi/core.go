package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CoreABI covers the capability surface shared by flagship and engine core
// contracts: artist lookup, admin ACL delegation, project state and the
// filtered mint entry point.
var CoreABI abi.ABI

var coreABI = `[{"type":"function","name":"projectIdToArtistAddress","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_projectId"}],"outputs":[{"type":"address","name":"artistAddress"}]},{"type":"function","name":"adminACLAllowed","constant":false,"stateMutability":"nonpayable","inputs":[{"type":"address","name":"_sender"},{"type":"address","name":"_contract"},{"type":"bytes4","name":"_selector"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"projectStateData","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_projectId"}],"outputs":[{"type":"uint256","name":"invocations"},{"type":"uint256","name":"maxInvocations"},{"type":"bool","name":"active"},{"type":"bool","name":"paused"},{"type":"uint256","name":"completedTimestamp"},{"type":"bool","name":"locked"}]},{"type":"function","name":"nextProjectId","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"startingProjectId","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"mint_Ecf","constant":false,"stateMutability":"nonpayable","inputs":[{"type":"address","name":"_to"},{"type":"uint256","name":"_projectId"},{"type":"address","name":"_by"}],"outputs":[{"type":"uint256","name":"_tokenId"}]},{"type":"function","name":"tokenIdToHashSeed","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_tokenId"}],"outputs":[{"type":"bytes12","name":"hashSeed"}]},{"type":"event","anonymous":false,"name":"Mint","inputs":[{"type":"address","name":"_to","indexed":true},{"type":"uint256","name":"_tokenId","indexed":true}]}]`

// CoreSplitsFlagshipABI is the 6-word primary revenue split shape returned
// by flagship cores.
var CoreSplitsFlagshipABI abi.ABI

var coreSplitsFlagshipABI = `[{"type":"function","name":"getPrimaryRevenueSplits","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_projectId"},{"type":"uint256","name":"_price"}],"outputs":[{"type":"uint256","name":"renderProviderRevenue"},{"type":"address","name":"renderProviderAddress"},{"type":"uint256","name":"artistRevenue"},{"type":"address","name":"artistAddress"},{"type":"uint256","name":"additionalPayeePrimaryRevenue"},{"type":"address","name":"additionalPayeePrimaryAddress"}]}]`

// CoreSplitsEngineABI is the 8-word engine shape: engines carry an extra
// platform-provider payee. The method selector is identical to the flagship
// one, only the return shape differs.
var CoreSplitsEngineABI abi.ABI

var coreSplitsEngineABI = `[{"type":"function","name":"getPrimaryRevenueSplits","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_projectId"},{"type":"uint256","name":"_price"}],"outputs":[{"type":"uint256","name":"renderProviderRevenue"},{"type":"address","name":"renderProviderAddress"},{"type":"uint256","name":"platformProviderRevenue"},{"type":"address","name":"platformProviderAddress"},{"type":"uint256","name":"artistRevenue"},{"type":"address","name":"artistAddress"},{"type":"uint256","name":"additionalPayeePrimaryRevenue"},{"type":"address","name":"additionalPayeePrimaryAddress"}]}]`

// CoreRegistryABI is the engine registry queried before any per-project
// registry mutation.
var CoreRegistryABI abi.ABI

var coreRegistryABI = `[{"type":"function","name":"isRegisteredContract","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"_contract"}],"outputs":[{"type":"bool","name":"isRegistered"}]}]`

func init() {
	CoreABI = mustParse(coreABI, "core")
	CoreSplitsFlagshipABI = mustParse(coreSplitsFlagshipABI, "core flagship splits")
	CoreSplitsEngineABI = mustParse(coreSplitsEngineABI, "core engine splits")
	CoreRegistryABI = mustParse(coreRegistryABI, "core registry")
}

func mustParse(raw, name string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("Failed to parse " + name + " abi")
	}
	return parsed
}
