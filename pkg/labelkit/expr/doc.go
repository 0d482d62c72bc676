/*
Package expr parses and evaluates the condition language used inside
{if ...} markers.

# Overview

Conditions are flat comparison chains: one or more clauses joined by the
keywords "and" and "or", evaluated strictly left to right. The language is
deliberately small. There is no arithmetic, no grouping, no negation
keyword, and no precedence between the joiners.

# Grammar

	<condition> := <clause> | <clause> ' and ' <condition> | <clause> ' or ' <condition>
	<clause>    := <path> | <path> <op> <operand>
	<op>        := '!=' | '>=' | '<=' | '=' | '>' | '<' | '~' | '$' | '^'
	<operand>   := <path> | 'literal' | "literal" | bare text

The keyword split is literal and ordered: " and " is searched for before
" or ", so in a mixed expression the text left of the first " and " is one
clause even when it contains " or ". A clause splits at the first
occurrence of the highest-priority operator present; two-character
operators outrank their one-character prefixes.

# Operators

	!=   not equal (string forms; absent only differs from present)
	>=   greater or equal (numeric, with fallbacks below)
	<=   less or equal
	=    equal (string forms; absent equals only absent)
	>    greater
	<    less
	~    contains, case-insensitive
	$    starts with, case-insensitive
	^    ends with, case-insensitive

A clause with no operator is a truthy check on the resolved path: absent,
nil, false, zero numbers, empty strings, and empty sequences or maps are
all false.

# Comparison Semantics

Equality compares string forms, except that an absent operand is only ever
equal to another absent operand. The ordering operators compare
numerically when both sides have a numeric reading, with an absent side
counting as 0; if a present value on either side has none, both sides
compare lexicographically instead. The substring operators always compare
string forms, ignoring case, and an absent left side is simply false.

# Evaluation

Chains fold left to right and every clause is computed before its result
is combined, so the right side of an "and" runs even when the left side is
already false:

	// status = 'ok' and attempts < 3 or force
	// evaluates as: ((status = 'ok') AND (attempts < 3)) OR (force)

Use ParseCondition to obtain the clause list, and an Evaluator (or the
package-level helpers) to run it:

	cond := expr.ParseCondition("size > 1000 and codec ~ 'hevc'")
	ok := expr.Evaluate(cond, map[string]any{"size": 2048, "codec": "HEVC"})
	// ok == true

Path resolution is pluggable via WithLookup; by default clauses resolve
operands with the resolve package.
*/
package expr
