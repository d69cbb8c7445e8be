package validate

import "github.com/ethereum/go-ethereum/common"

// IsEVMAddress reports whether s is a well-formed 0x-prefixed EVM address.
func IsEVMAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ChecksumAddress normalizes an address to its EIP-55 checksum form.
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// IsTxHash reports whether s looks like a 32-byte transaction hash.
func IsTxHash(s string) bool {
	if len(s) != 66 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
