package httpclient

import (
	"github.com/kbukum/netclient/provider"
)

// compile-time assertions
var _ provider.RequestResponse[Request, *Response] = (*Adapter)(nil)
