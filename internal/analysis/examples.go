package analysis

// UsageExample is a canonical (input, expected output) pair from a
// representative domain. The table documents the tool surface and seeds
// tests; it never drives runtime behavior.
type UsageExample struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Input          []string `json:"input"`
	ExpectedPrefix string   `json:"expected_prefix"`
	UseCase        string   `json:"use_case,omitempty"`
}

// UsageExamples returns the fixed set of illustrative examples.
func UsageExamples() []UsageExample {
	return []UsageExample{
		{
			Name:           "basic_usage",
			Description:    "Basic progressive prefix finding",
			Input:          []string{"prefix_test_1", "prefix_test_2", "prefix_demo", "prefix_example"},
			ExpectedPrefix: "prefix_",
		},
		{
			Name:        "file_paths",
			Description: "Finding common directory paths",
			Input: []string{
				"/home/user/documents/file1.txt",
				"/home/user/documents/file2.txt",
				"/home/user/downloads/file3.txt",
			},
			ExpectedPrefix: "/home/user/do",
			UseCase:        "File path analysis",
		},
		{
			Name:        "urls",
			Description: "URL prefix extraction",
			Input: []string{
				"https://example.com/api/v1/users",
				"https://example.com/api/v1/posts",
				"https://example.com/api/v2/users",
			},
			ExpectedPrefix: "https://example.com/api/v",
			UseCase:        "Web crawling and analysis",
		},
		{
			Name:           "code_patterns",
			Description:    "Identifying common naming patterns",
			Input:          []string{"getUserData", "getUserInfo", "getUserProfile", "getPostData"},
			ExpectedPrefix: "get",
			UseCase:        "Code refactoring",
		},
		{
			Name:           "single_string",
			Description:    "A lone string is its own common prefix",
			Input:          []string{"single"},
			ExpectedPrefix: "single",
		},
		{
			Name:           "no_common_prefix",
			Description:    "Disjoint strings share nothing",
			Input:          []string{"abc", "xyz"},
			ExpectedPrefix: "",
		},
		{
			Name:           "empty_string_member",
			Description:    "An empty string forces an empty prefix",
			Input:          []string{"", "abc"},
			ExpectedPrefix: "",
		},
	}
}
