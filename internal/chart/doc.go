// Package chart renders scatter plots, histograms and box plots from dataset
// columns using gonum/plot. Charts are written as PNG files with
// deterministic names derived from the plot kind and column names, so
// re-rendering the same plot overwrites the previous image.
package chart
