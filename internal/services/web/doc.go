// Package web hosts the browser-facing character catalog service.
//
// Feature modules own their routes; this package composes them behind the
// shared middleware chain and the header search shell, and serves embedded
// static assets.
package web
