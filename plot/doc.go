// Package plot defines the value-only structures the analysis layer
// hands to an external plotting component. Nothing here renders: the
// types carry axis data, bin policy and display styling, and the host
// application's plotting layer decides what to do with them.
package plot
