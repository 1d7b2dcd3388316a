package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenRequestID() string {
	return fmt.Sprintf("%s%s", time.Now().Format("20060102150405"), strings.Split(uuid.New().String(), "-")[0])
}

func GetTimestamp() int64 {
	return time.Now().Unix()
}
