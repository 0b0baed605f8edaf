// Package repository handles all interactions with the database.
//
// It holds the MongoDB queries used to fetch, persist and update
// documents, keeping driver details away from the service layer.
// Driver errors leave this package classified by mongoerr.
package repository
