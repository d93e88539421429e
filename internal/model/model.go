// Package model holds the plain data objects the repositories read and write.
//
// Instances are built fresh for every row; nothing here is cached or shared.
package model
