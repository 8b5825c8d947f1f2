package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// BuildDocument assembles the OpenAPI 3 description of the REST surface.
// Schemas mirror the DTOs in domain/dto; paths mirror interfaces/api/routes.
func BuildDocument(title string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Version:     "v1",
			Description: "Session-authenticated task and subtask management API.",
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: "/"},
		},
		Components: &openapi3.Components{
			Schemas: buildSchemas(),
		},
		Paths: openapi3.NewPaths(),
	}

	addHealthPaths(doc)
	addAuthPaths(doc)
	addTaskPaths(doc)
	addSubtaskPaths(doc)

	return doc
}

func ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

func buildSchemas() openapi3.Schemas {
	timeStr := openapi3.NewStringSchema().WithFormat("date-time")

	user := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("created_at", timeStr)

	task := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("priority", openapi3.NewIntegerSchema()).
		WithProperty("estimated_minutes", openapi3.NewIntegerSchema()).
		WithProperty("due_at", openapi3.NewStringSchema().WithFormat("date-time").WithNullable()).
		WithProperty("is_completed", openapi3.NewBoolSchema()).
		WithProperty("created_at", timeStr).
		WithProperty("updated_at", timeStr)

	subtask := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("task_id", openapi3.NewInt64Schema()).
		WithProperty("parent_subtask_id", openapi3.NewInt64Schema().WithNullable()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("is_completed", openapi3.NewBoolSchema()).
		WithProperty("order_index", openapi3.NewIntegerSchema()).
		WithProperty("created_at", timeStr).
		WithProperty("updated_at", timeStr).
		WithProperty("effective_priority", openapi3.NewIntegerSchema().WithNullable()).
		WithProperty("effective_estimated_minutes", openapi3.NewIntegerSchema().WithNullable()).
		WithProperty("effective_due_at", openapi3.NewStringSchema().WithFormat("date-time").WithNullable())

	taskDetail := openapi3.NewObjectSchema()
	taskDetail.Properties = openapi3.Schemas{}
	for name, prop := range task.Properties {
		taskDetail.Properties[name] = prop
	}
	taskDetail.WithPropertyRef("subtasks", openapi3.NewSchemaRef("", openapi3.NewArraySchema().WithItems(subtask)))

	loginRequest := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(150)).
		WithProperty("password", openapi3.NewStringSchema())
	loginRequest.Required = []string{"username"}

	createTask := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("priority", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("estimated_minutes", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("due_at", openapi3.NewStringSchema().WithFormat("date-time").WithNullable())
	createTask.Required = []string{"title"}

	updateTask := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("priority", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("estimated_minutes", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("due_at", openapi3.NewStringSchema().WithFormat("date-time").WithNullable())

	createSubtask := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("parent_subtask_id", openapi3.NewInt64Schema().WithNullable()).
		WithProperty("order_index", openapi3.NewIntegerSchema().WithMin(0))
	createSubtask.Required = []string{"title"}

	updateSubtask := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
		WithProperty("description", openapi3.NewStringSchema().WithNullable()).
		WithProperty("parent_subtask_id", openapi3.NewInt64Schema().WithNullable()).
		WithProperty("order_index", openapi3.NewIntegerSchema().WithMin(0))

	completeAction := openapi3.NewObjectSchema().
		WithProperty("complete", openapi3.NewBoolSchema().WithDefault(true)).
		WithProperty("cascade", openapi3.NewBoolSchema().WithDefault(false))

	success := openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema())

	errorInfo := openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema())

	return openapi3.Schemas{
		"User":                 openapi3.NewSchemaRef("", user),
		"Task":                 openapi3.NewSchemaRef("", task),
		"TaskDetail":           openapi3.NewSchemaRef("", taskDetail),
		"Subtask":              openapi3.NewSchemaRef("", subtask),
		"LoginRequest":         openapi3.NewSchemaRef("", loginRequest),
		"CreateTaskRequest":    openapi3.NewSchemaRef("", createTask),
		"UpdateTaskRequest":    openapi3.NewSchemaRef("", updateTask),
		"CreateSubtaskRequest": openapi3.NewSchemaRef("", createSubtask),
		"UpdateSubtaskRequest": openapi3.NewSchemaRef("", updateSubtask),
		"CompleteAction":       openapi3.NewSchemaRef("", completeAction),
		"Success":              openapi3.NewSchemaRef("", success),
		"ErrorInfo":            openapi3.NewSchemaRef("", errorInfo),
	}
}

func jsonResponse(status int, description, schemaName string) openapi3.NewResponsesOption {
	response := openapi3.NewResponse().WithDescription(description)
	if schemaName != "" {
		response = response.WithJSONSchemaRef(ref(schemaName))
	}
	return openapi3.WithStatus(status, &openapi3.ResponseRef{Value: response})
}

func operation(operationID, summary, tag string, responses ...openapi3.NewResponsesOption) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: operationID,
		Summary:     summary,
		Tags:        []string{tag},
		Responses:   openapi3.NewResponses(responses...),
	}
}

func withBody(op *openapi3.Operation, schemaName string) *openapi3.Operation {
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref(schemaName)),
	}
	return op
}

func idParam(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewInt64Schema()),
	}
}

func queryParam(name string, schema *openapi3.Schema) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewQueryParameter(name).WithSchema(schema),
	}
}

func addHealthPaths(doc *openapi3.T) {
	health := operation("health_check", "Health check", "Health",
		jsonResponse(200, "Service is healthy", ""))
	doc.Paths.Set("/health", &openapi3.PathItem{Get: health})
	doc.Paths.Set("/", &openapi3.PathItem{
		Get: operation("root_health_check", "Health check", "Health",
			jsonResponse(200, "Service is healthy", "")),
	})
}

func addAuthPaths(doc *openapi3.T) {
	doc.Paths.Set("/auth/login", &openapi3.PathItem{
		Post: withBody(operation("auth_login", "Login with username", "Auth",
			jsonResponse(200, "Logged in", "User"),
			jsonResponse(400, "Invalid input", "ErrorInfo"),
		), "LoginRequest"),
	})
	doc.Paths.Set("/auth/logout", &openapi3.PathItem{
		Post: operation("auth_logout", "Logout", "Auth",
			jsonResponse(200, "Logged out", "Success")),
	})
	doc.Paths.Set("/auth/me", &openapi3.PathItem{
		Get: operation("auth_me", "Get current user", "Auth",
			jsonResponse(200, "Current user, or null when not logged in", "User")),
	})
}

func addTaskPaths(doc *openapi3.T) {
	list := operation("tasks_list", "List tasks", "Tasks",
		jsonResponse(200, "Tasks owned by the current user", "Task"),
		jsonResponse(401, "Not authenticated", "ErrorInfo"))
	list.Parameters = openapi3.Parameters{
		queryParam("search", openapi3.NewStringSchema()),
		queryParam("priority", openapi3.NewIntegerSchema()),
		queryParam("due_within_days", openapi3.NewIntegerSchema()),
		queryParam("sort_by", openapi3.NewStringSchema().
			WithEnum("priority", "due_at", "estimated_minutes", "created_at")),
	}

	doc.Paths.Set("/tasks", &openapi3.PathItem{
		Get: list,
		Post: withBody(operation("tasks_create", "Create task", "Tasks",
			jsonResponse(201, "Task created", "TaskDetail"),
			jsonResponse(400, "Validation failed", "ErrorInfo"),
			jsonResponse(401, "Not authenticated", "ErrorInfo"),
		), "CreateTaskRequest"),
	})

	doc.Paths.Set("/tasks/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam("id")},
		Get: operation("tasks_get", "Get task", "Tasks",
			jsonResponse(200, "Task with subtasks", "TaskDetail"),
			jsonResponse(404, "Task not found", "ErrorInfo")),
		Patch: withBody(operation("tasks_update", "Update task", "Tasks",
			jsonResponse(200, "Task updated", "TaskDetail"),
			jsonResponse(404, "Task not found", "ErrorInfo"),
		), "UpdateTaskRequest"),
		Delete: operation("tasks_delete", "Delete task", "Tasks",
			jsonResponse(200, "Task and its subtasks deleted", "Success"),
			jsonResponse(404, "Task not found", "ErrorInfo")),
	})

	doc.Paths.Set("/tasks/{id}/complete", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam("id")},
		Post: withBody(operation("tasks_complete", "Complete task", "Tasks",
			jsonResponse(200, "Completion updated", "TaskDetail"),
			jsonResponse(404, "Task not found", "ErrorInfo"),
		), "CompleteAction"),
	})

	doc.Paths.Set("/tasks/{id}/subtasks", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam("id")},
		Get: operation("subtasks_list_by_task", "List subtasks by task", "Subtasks",
			jsonResponse(200, "Subtasks of the task", "Subtask"),
			jsonResponse(404, "Task not found", "ErrorInfo")),
		Post: withBody(operation("subtasks_create", "Create subtask", "Subtasks",
			jsonResponse(201, "Subtask created", "Subtask"),
			jsonResponse(404, "Task or parent subtask not found", "ErrorInfo"),
		), "CreateSubtaskRequest"),
	})
}

func addSubtaskPaths(doc *openapi3.T) {
	doc.Paths.Set("/subtasks/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam("id")},
		Get: operation("subtasks_get", "Get subtask", "Subtasks",
			jsonResponse(200, "Subtask", "Subtask"),
			jsonResponse(404, "Subtask not found", "ErrorInfo")),
		Patch: withBody(operation("subtasks_update", "Update subtask", "Subtasks",
			jsonResponse(200, "Subtask updated", "Subtask"),
			jsonResponse(400, "Invalid reparent target", "ErrorInfo"),
			jsonResponse(404, "Subtask not found", "ErrorInfo"),
		), "UpdateSubtaskRequest"),
		Delete: operation("subtasks_delete", "Delete subtask", "Subtasks",
			jsonResponse(200, "Subtask deleted", "Success"),
			jsonResponse(404, "Subtask not found", "ErrorInfo")),
	})

	doc.Paths.Set("/subtasks/{id}/complete", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam("id")},
		Post: withBody(operation("subtasks_complete", "Complete subtask", "Subtasks",
			jsonResponse(200, "Completion updated", "Subtask"),
			jsonResponse(404, "Subtask not found", "ErrorInfo"),
		), "CompleteAction"),
	})
}
