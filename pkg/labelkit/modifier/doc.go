/*
Package modifier implements the named value transforms applied with the
pipe syntax in variable markers, such as {size|bytes} or
{title|upper|truncate(30)}.

Modifiers chain left to right and are individually unable to break a
render: an unknown name, an inapplicable value, or even a panic inside a
modifier all degrade to passing the value through untouched. An absent
value skips the chain entirely.

# Built-ins

	bytes        human-readable size (1536 -> "1.50 KB", 100 -> "100 B")
	time         seconds as MM:SS, or HH:MM:SS from an hour up
	upper        upper-case
	lower        lower-case
	title        title-case each word
	join         join sequence elements, default separator ", "
	first        first element of a non-empty sequence, else absent
	last         last element of a non-empty sequence, else absent
	truncate     cap length (default 50), appending "..."
	replace      replace(a,b) substitutes a with b

# Custom Modifiers

Register additional transforms on a Registry:

	reg := modifier.New()
	reg.Register("stars", func(v any, args []string) (any, bool) {
	    n, ok := expr.ToFloat64(v)
	    if !ok {
	        return v, true
	    }
	    return strings.Repeat("*", int(n)), true
	})
*/
package modifier
