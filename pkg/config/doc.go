/*
Package config loads and validates textswap configuration.

	            +-------------+
	            |   Config    |
	            | (Dictionary)|
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  JSON   |   |  YAML   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Parse a config file into named, ordered replacement dictionaries
- Carry the ignore lists used by the walker
- Resolve the dictionary for a run and turn it into replacement rules

🔄 Flow:
1. Load picks a parser by file extension
2. The parser decodes the file, rejecting unknown fields
3. Validate checks the ignore lists
4. ResolveDictionary picks one dictionary
5. Dictionary.Rules flips pairs for the requested direction

📝 Ordering:
Dictionary order is significant. Replacements cascade, so every parser keeps
the document order of pairs instead of decoding into a Go map.

🔍 Example:

	cfg, err := config.Load(ctx, "config.json")
	if err != nil {
		return err
	}
	dict, err := cfg.ResolveDictionary("")
	if err != nil {
		return err
	}
	rules, err := dict.Rules(text.KeysToValues)
*/
package config
