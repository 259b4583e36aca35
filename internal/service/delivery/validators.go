package delivery

import "strings"

func isValidOrderNumber(orderNumber string) bool {
	return strings.TrimSpace(orderNumber) != ""
}

func isValidDeliveryID(id int64) bool {
	return id > 0
}
