/*
Fastastats reads a fasta file and prints the average, maximum, minimum
and median sequence length and the GC content of all the sequences
together. It saves a histogram of sequence lengths as an image.

Anything before the first ">" is ignored. Spaces and line breaks in
comments and sequences are removed before anything is counted.
Gzipped input is fine.

Usage:

	fastastats -o outfile [flags]

The flags are:

	-o, --out path
		Where to save the histogram. A name ending in .bmp or .tif gives
		that format, otherwise png.
	-i, --in path
		Input fasta file. Without it, read from a pipe.
	-g, --gc_inclusive
		Strict GC content, only G and C are counted. Without it, symbols
		that might be G or C (R, Y, K, M, S, B, D, H, V, N) count as GC too.
		Lower case symbols are never counted.
	-b, --bins n
		Number of bins in the histogram, default 200.
	-t, --title string
		Histogram title, default "Fasta lengths".
	-v, --verbose
		Chatter on standard error, including a rough distribution of lengths.
*/
package main
