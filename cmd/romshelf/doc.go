// Command romshelf organizes zipped retro game archives into a library laid
// out by a metadata-driven path template.
package main
