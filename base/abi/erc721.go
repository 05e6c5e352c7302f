package abi

var ERC721TokenABI = mustParse(erc721ABI, "erc721")

var erc721ABI = `[{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"supportsInterface","constant":true,"stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceID"}],"outputs":[{"type":"bool"}]},{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"_from","indexed":true},{"type":"address","name":"_to","indexed":true},{"type":"uint256","name":"_tokenId","indexed":true}]}]`
