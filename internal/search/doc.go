// Package search finds images under a directory tree whose text mentions a keyword.
//
// The match is a case-insensitive substring test on the text a recognizer
// returns for each file; "WISDOM" and "wisdom" find the same images. Which
// files are recognized at all is decided by an ExtensionPolicy. The default
// policy compares the suffixes .png, .jpg and .jpeg case-sensitively, so
// "note.PNG" is not considered unless PolicyFold or PolicySniff is chosen.
//
// Searches are sequential unless Options.Workers is raised. Results are
// always reported in walk order: a directory's files by name, then its
// subdirectories by name.
package search
