package mysql

// orderClause builds "col dir" from a repo-validated column; callers resolve
// user input through the domain OrderColumn maps before it gets here.
func orderClause(col string, desc bool, fallback string) string {
	if col == "" {
		col = fallback
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
