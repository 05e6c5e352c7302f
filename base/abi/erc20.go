package abi

var ERC20TokenABI = mustParse(erc20ABI, "erc20")

var erc20ABI = `[{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"_owner"}],"outputs":[{"type":"uint256","name":"balance"}]},{"type":"function","name":"allowance","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"_owner"},{"type":"address","name":"_spender"}],"outputs":[{"type":"uint256","name":"remaining"}]},{"type":"function","name":"transferFrom","constant":false,"stateMutability":"nonpayable","inputs":[{"type":"address","name":"_from"},{"type":"address","name":"_to"},{"type":"uint256","name":"_value"}],"outputs":[{"type":"bool","name":"success"}]},{"type":"function","name":"symbol","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"string"}]},{"type":"function","name":"decimals","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint8"}]}]`
