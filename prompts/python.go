package prompts

import "fmt"

const PythonProgrammer = `You are a python programmer.`

func WriteFunction(goal string) string {
	return fmt.Sprintf(
		"Write a Python function to %s. The code must be typed. The answer must only be the python code and nothing else.",
		goal,
	)
}

func WriteTest(functionName string) string {
	return fmt.Sprintf(
		"Write a Python test for the function above. The code must be typed and shall use pytest parametric tests. The function must be called test_%s The answer must only be the python code and nothing else.",
		functionName,
	)
}

func CodeToTest(packageName string, moduleName string, code string) string {
	return fmt.Sprintf(
		"The module can be imported with ```python\nfrom %s import %s\n```\nCode to test:\n```python\n%s\n```",
		packageName,
		moduleName,
		code,
	)
}
