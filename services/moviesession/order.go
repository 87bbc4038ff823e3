package moviesession

import (
	"fmt"
	"strings"

	"kino/services"
)

var orderFields = map[string]string{
	"start_datetime": "startDatetime",
	"startDatetime":  "startDatetime",
	"end_datetime":   "endDatetime",
	"endDatetime":    "endDatetime",
	"price":          "price",
	"movie":          "movie",
}

// ParseOrder maps an ordering query value such as "-price" to a bson field and direction.
func ParseOrder(order string) (field string, desc bool, err error) {
	order = strings.TrimSpace(order)
	if order == "" {
		return "startDatetime", false, nil
	}
	if strings.HasPrefix(order, "-") {
		desc = true
		order = order[1:]
	}
	field, ok := orderFields[order]
	if !ok {
		return "", false, fmt.Errorf("%w: unsupported order %q", services.ErrInvalidInput, order)
	}
	return field, desc, nil
}
