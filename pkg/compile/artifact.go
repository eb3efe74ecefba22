package compile

// Artifact is the compiled, dependency-free form bundle: three plain text
// blobs that reproduce the authoring runtime's branching behavior outside
// the authoring application. The compiler only ever produces text; archive
// packaging is a collaborator's job.
type Artifact struct {
	// Markup is the standalone HTML document body: one block per question,
	// a terminal submitted block, and navigation controls.
	Markup string
	// Stylesheet is static CSS plus values interpolated from FormSettings
	// and the resolved theme. It never depends on answer state.
	Stylesheet string
	// Behavior is a self-contained script reimplementing the visibility
	// evaluator, the navigation state machine, and the success-redirect
	// resolver against the embedded normalized definition.
	Behavior string
}

// File is one named output produced by a Packager.
type File struct {
	Name    string
	Content string
}
