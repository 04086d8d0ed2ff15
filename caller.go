package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// api is the process-wide native call boundary. Tests substitute an
// in-memory fake through setCaller.
var api winapi.Caller = winapi.NewSystemCaller()

func setCaller(c winapi.Caller) winapi.Caller {
	prev := api
	api = c

	return prev
}
