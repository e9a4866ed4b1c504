package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const merchantUIDPrefix = "order_"

func MerchantUID(orderID int64) string {
	return merchantUIDPrefix + strconv.FormatInt(orderID, 10)
}

// ParseMerchantUID обратная к MerchantUID операция.
func ParseMerchantUID(uid string) (int64, error) {
	raw, ok := strings.CutPrefix(uid, merchantUIDPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid merchant uid `%s`", uid)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid merchant uid `%s`: %s", uid, err.Error())
	}
	return id, nil
}
