// Package deploy implements the validation categories run against an SMS
// spam classifier project tree before a deployment is attempted.
package deploy

var (
	// requiredProjectPaths are the paths, relative to the project root,
	// the deployment pipeline relies on.
	requiredProjectPaths = []string{
		"demo_app.py",
		"requirements.txt",
		"Dockerfile",
		"Jenkinsfile",
		"src",
		"scripts",
	}

	// requiredPipelineStages must all appear as stage declarations in the
	// pipeline descriptor. Stages are mandatory; a missing stage fails
	// the run.
	requiredPipelineStages = []string{
		"Checkout",
		"Build Image",
		"Test",
		"Deploy",
	}

	// expectedImageDirectives are advisory. A Dockerfile that builds
	// without them may still work, so absences surface as warnings.
	expectedImageDirectives = []string{
		"FROM python",
		"WORKDIR",
		"COPY requirements.txt",
		"EXPOSE",
		"CMD",
	}

	// expectedPackages are advisory. The demo serves two models, so both
	// the sklearn baseline and the transformer runtime are expected.
	expectedPackages = []string{
		"flask",
		"scikit-learn",
		"pandas",
		"joblib",
		"transformers",
		"torch",
	}
)
