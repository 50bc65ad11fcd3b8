package websocket

import (
	"fmt"
	"strconv"
	"strings"
)

// TopicDashboard receives every change to the customer book
const TopicDashboard = "dashboard"

const customerTopicPrefix = "customer:"

// CustomerTopic is the topic a customer's detail page subscribes to
func CustomerTopic(customerID int64) string {
	return customerTopicPrefix + strconv.FormatInt(customerID, 10)
}

// ParseTopic validates a topic requested by a client
func ParseTopic(s string) (string, error) {
	if s == "" || s == TopicDashboard {
		return TopicDashboard, nil
	}
	if idStr, ok := strings.CutPrefix(s, customerTopicPrefix); ok {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err == nil && id > 0 {
			return CustomerTopic(id), nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", s)
}
