// Package cleaning implements the dataset cleaning steps: IQR outlier
// removal, string normalization, and the optional user-selected transforms
// (clamping negatives, dropping columns).
//
// All steps mutate the dataset in place. Outlier removal processes numeric
// columns in order, computing each column's interquartile bounds over the
// rows that survived the previous columns, and drops any row outside
// [Q1 - m*IQR, Q3 + m*IQR] where m defaults to 1.5.
package cleaning
