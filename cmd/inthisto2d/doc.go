/*
Inthisto2d reads pairs of integers, one pair per line, and saves a two
dimensional histogram. It is meant for the end of a pipe, something like

	cut -f 3,5 table.tsv | inthisto2d --header -l out.png

Usage:

	inthisto2d outfile [-i infile] [--header] [-s sep] [-l] [-t title] [-v]

The separator defaults to a tab. With --header, the first line gives the
axis labels. With -l, grey levels follow the logarithm of the counts and
empty squares are left white. A line without the separator, with something
that is not an integer, or with more than two fields stops everything and
no image is written.
*/
package main
