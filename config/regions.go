package config

import "strings"

// RegionSet is the fixed set of AWS regions the bot accepts in report
// requests. A single shared value is injected into every component that
// needs region validation or extraction.
type RegionSet []string

// Regions enumerates the commercial regions the bot may be asked to report
// on. Opt-in regions the account has not enabled simply return an empty
// inventory.
var Regions = RegionSet{
	"us-east-2",
	"us-east-1",
	"us-west-1",
	"us-west-2",
	"af-south-1",
	"ap-east-1",
	"ap-southeast-3",
	"ap-south-1",
	"ap-northeast-3",
	"ap-northeast-2",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-northeast-1",
	"ca-central-1",
	"eu-central-1",
	"eu-west-1",
	"eu-west-2",
	"eu-south-1",
	"eu-west-3",
	"eu-north-1",
	"me-south-1",
	"sa-east-1",
}

// Contains reports whether region is a member of the set.
func (s RegionSet) Contains(region string) bool {
	for _, r := range s {
		if r == region {
			return true
		}
	}

	return false
}

// MatchSubstring returns the first region of the set that appears as a
// substring of v, typically an ARN.
func (s RegionSet) MatchSubstring(v string) (string, bool) {
	for _, r := range s {
		if strings.Contains(v, r) {
			return r, true
		}
	}

	return "", false
}
