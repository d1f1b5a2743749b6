// Package gateway decodes recorded gateway dispatch frames into typed
// discord events.
package gateway
