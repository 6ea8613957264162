// Package sqlbind renders SQL templates with inline parameters.
/*

SQL Template Rendering

sqlbind substitutes ? placeholders with formatted and quoted values,
so a statement can be built without a prepared statement round trip:

	sql, err := sqlbind.Render("SELECT * FROM users WHERE id = ?d AND name = ?", 1, "Jack")
	// SELECT * FROM users WHERE id = 1 AND name = 'Jack'

A placeholder may be followed by a specifier: ?d for integers, ?f for floats,
?a for lists and ?# for identifiers. Template fragments enclosed in { } are
conditional. A fragment is dropped together with its parameters when any of
them is the value returned by Skip:

	sql, err := sqlbind.Render("SELECT * FROM users{ WHERE block = ?d}", sqlbind.Skip())
	// SELECT * FROM users

A ? followed by any character other than a blank, a block bracket or
the end of the template is a specifier, so ?) or ?, fail as unknown
specifiers. Separate such a placeholder from punctuation with a blank.

Use \?, \{ and \} to put literal characters into a template.
Escaped markers are not placeholders: they are not counted against the
parameters and a rendered statement keeps them as plain ? { } characters.

Values are not escaped by the default MySQL dialect. Use MySQLEscaped or
PostgreSQL to double quote characters found inside values.
*/
package sqlbind
