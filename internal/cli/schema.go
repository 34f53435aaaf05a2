package cli

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// holeModelSchema is the CUE structural schema for hole-model documents.
// It mirrors the kernel codec's shape rules; the bbox ordering invariant
// is expressed directly as field constraints.
const holeModelSchema = `
import "list"

#Point: {lat: number, lon: number} | {x: number, y: number}

#Ring: [...#Point] & list.MinItems(3)

#BBox: {
	minLat: number
	minLon: number
	maxLat: number & >=minLat
	maxLon: number & >=minLon
}

#HoleModel: {
	id:        string & !=""
	bbox:      #BBox
	fairways?: [...#Ring] | null
	greens?:   [...#Ring] | null
	bunkers?:  [...#Ring] | null
	pin?:      #Point
}
`

// schemaIssues unifies a JSON document with the hole-model schema and
// converts every CUE error into a ValidationIssue with its document path.
func schemaIssues(filename string, data []byte) []ValidationIssue {
	ctx := cuecontext.New()
	schema := ctx.CompileString(holeModelSchema)
	if err := schema.Err(); err != nil {
		return []ValidationIssue{{Message: "internal schema error: " + err.Error()}}
	}
	def := schema.LookupPath(cue.ParsePath("#HoleModel"))

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return []ValidationIssue{{Message: "malformed JSON: " + err.Error()}}
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return []ValidationIssue{{Message: "malformed JSON: " + err.Error()}}
	}

	unified := def.Unify(doc)
	verr := unified.Validate(cue.Final())
	if verr == nil {
		return nil
	}
	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(verr) {
		issue := ValidationIssue{Message: e.Error()}
		if len(e.Path()) > 0 {
			issue.Path = pathString(e.Path())
		}
		issues = append(issues, issue)
	}
	return issues
}

// pathString joins a CUE error path into the dotted form used in output.
func pathString(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
