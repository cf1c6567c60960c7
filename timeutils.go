package pnshelper

import "github.com/theoremus-urban-solutions/pns-helper/utils"

// GetTimestamp returns the current UTC time with milliseconds zeroed
func GetTimestamp() string {
	return utils.GetTimestamp()
}
