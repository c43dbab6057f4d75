// Package store builds catalog.Store implementations from a Config.
package store
