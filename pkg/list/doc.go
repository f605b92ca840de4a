// Package list implements the program list model: it owns the remote list
// source, refreshes its held collection through the loader and parser stages,
// and notifies subscribers exactly once per completed fetch, after the full
// payload has been installed. Field updates are never announced individually.
package list
