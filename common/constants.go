package common

import "github.com/dreamcanvas/dream-api/common/helper"

var StartTime = helper.GetTimestamp() // unit: second
var Version = "v0.2.0"
