package emit

import (
	"fmt"

	"github.com/marcus/designtokens/internal/token"
)

const jsGetToken = `export function getToken(path) {
  let node = tokens;
  for (const key of String(path).split('.')) {
    if (node === null || typeof node !== 'object' || !Object.prototype.hasOwnProperty.call(node, key)) {
      return null;
    }
    node = node[key];
  }
  if (node !== null && typeof node === 'object' && 'value' in node) {
    return node.value;
  }
  return null;
}
`

// JS returns an ES module exporting the resolved tree as its default export
// and a getToken(path) accessor that returns null for missing paths.
func JS(resolved *token.Group) (string, error) {
	data, err := token.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tokens: %w", err)
	}
	return "// " + banner + "\n\n" +
		"const tokens = " + string(data) + ";\n\n" +
		jsGetToken + "\n" +
		"export default tokens;\n", nil
}

const typeDeclarations = `export type TokenValue = string | number | boolean;

export interface TokenLeaf {
  value: TokenValue;
  type?: string;
  [key: string]: unknown;
}

export interface TokenTree {
  [key: string]: TokenTree | TokenLeaf | unknown;
}

declare const tokens: TokenTree;

export declare function getToken(path: string): TokenValue | null;

export default tokens;
`

// TypeScript returns the declaration file matching the JS module.
func TypeScript() string {
	return "// " + banner + "\n\n" + typeDeclarations
}
