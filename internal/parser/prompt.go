package parser

import "fmt"

const systemInstruction = `You are an expert resume reviewer. You extract structured information from resumes and assess their quality. Always respond with a single valid JSON object and nothing else.`

// analysisPromptTemplate asks the model for the full extraction schema. The
// field names must match rawAnalysis exactly.
const analysisPromptTemplate = `Analyze the following resume and extract comprehensive information in JSON format. Be thorough and accurate.

Resume Text:
%s

Please extract the following information and return it as a valid JSON object:

{
    "personal_info": {
        "name": "Full name",
        "email": "Email address",
        "phone": "Phone number",
        "address": "Full address",
        "linkedin": "LinkedIn profile URL",
        "github": "GitHub profile URL",
        "website": "Personal website URL"
    },
    "skills": {
        "core_skills": ["Technical skills array"],
        "soft_skills": ["Soft skills array"],
        "certifications": ["Certifications array"],
        "languages": [
            {"language": "Language name", "proficiency": "Proficiency level"}
        ]
    },
    "work_experience": [
        {
            "company": "Company name",
            "position": "Job title",
            "duration": "Employment duration",
            "location": "Work location",
            "description": ["Bullet points of responsibilities"],
            "technologies": ["Technologies used"]
        }
    ],
    "education": [
        {
            "institution": "School/University name",
            "degree": "Degree type",
            "field_of_study": "Major/Field",
            "graduation_date": "Graduation date",
            "gpa": "GPA if mentioned",
            "location": "Institution location"
        }
    ],
    "projects": [
        {
            "name": "Project name",
            "description": "Project description",
            "technologies": ["Technologies used"],
            "duration": "Project duration",
            "url": "Project URL if available"
        }
    ],
    "achievements": ["List of achievements, awards, publications"],
    "analysis": {
        "resume_rating": 8.5,
        "strengths": "Key strengths of this resume",
        "improvement_areas": "Areas that need improvement with specific suggestions",
        "upskill_suggestions": "Detailed suggestions for skills to learn and career growth",
        "missing_sections": ["List of commonly expected resume sections that are missing"]
    }
}

Instructions:
1. Extract all available information accurately
2. For missing information, use null or empty arrays appropriately
3. Rate the resume out of 10 based on completeness, clarity, and professional presentation
4. Provide specific, actionable improvement suggestions
5. Suggest relevant upskilling opportunities based on the person's background
6. Identify missing resume sections like summary, certifications, etc.
7. Return only valid JSON without any additional text or formatting`

func analysisPrompt(resumeText string) string {
	return fmt.Sprintf(analysisPromptTemplate, resumeText)
}
