package abi

// DelegationRegistryABI is the token-level delegation check. A token-level
// delegation transitively implies wallet- and contract-level delegation on
// the registry side, so one query covers all three tiers.
var DelegationRegistryABI = mustParse(delegationRegistryABI, "delegation registry")

var delegationRegistryABI = `[{"type":"function","name":"checkDelegateForToken","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"delegate"},{"type":"address","name":"vault"},{"type":"address","name":"contract_"},{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"bool"}]}]`
