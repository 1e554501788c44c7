package check

var (
	DefaultTestResultsFilename = "results.json"
	DefaultJUnitFilename       = "results-junit.xml"

	// Descriptor files the category checks inspect, relative to the
	// project root.
	PipelineFilename           = "Jenkinsfile"
	ContainerFilename          = "Dockerfile"
	DependencyManifestFilename = "requirements.txt"

	// LevelMandatory marks checks whose findings fail the run.
	LevelMandatory = "mandatory"
	// LevelAdvisory marks checks whose secondary findings are warnings.
	LevelAdvisory = "advisory"
)
