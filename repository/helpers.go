package repository

import (
	"fmt"
	"regexp"
)

// regexEscape quotes a filter value for use as a literal Mongo regex.
func regexEscape(v interface{}) string {
	return regexp.QuoteMeta(fmt.Sprintf("%v", v))
}
