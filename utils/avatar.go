package utils

import "net/url"

// Default avatar DiceBear untuk user baru, style initials 256 PNG
func DefaultAvatar(name string) string {
	seed := url.QueryEscape(name)
	return "https://api.dicebear.com/7.x/initials/png?seed=" + seed +
		"&size=256&backgroundType=gradientLinear"
}
