// Package acl holds the operation selectors forwarded to admin-ACL
// contracts. Selectors are the 4-byte hashes of the canonical operation
// signatures, so an on-chain ACL can gate off-chain operations with the same
// policy table it uses for contract calls.
package acl

import (
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	SelectorSetMinterForProject      = Selector("setMinterForProject(uint256,address,address)")
	SelectorRemoveMinterForProject   = Selector("removeMinterForProject(uint256,address)")
	SelectorRemoveMintersForProjects = Selector("removeMintersForProjects(uint256[],address[])")
	SelectorApproveMinterGlobally    = Selector("approveMinterGlobally(address)")
	SelectorRevokeMinterGlobally     = Selector("revokeMinterGlobally(address)")
	SelectorApproveMinterForContract = Selector("approveMinterForContract(address,address)")
	SelectorRevokeMinterForContract  = Selector("revokeMinterForContract(address,address)")
	SelectorTransferOwnership        = Selector("transferOwnership(address)")
	SelectorUpdateCoreRegistry       = Selector("updateCoreRegistry(address)")
	SelectorResetAuctionDetails      = Selector("resetAuctionDetails(uint256,address)")
)

// Selector hashes a canonical signature into its 4-byte selector.
func Selector(signature string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(signature))[:4])
	return sel
}
